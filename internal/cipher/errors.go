package cipher

import (
	"errors"
	"fmt"
)

// Error represents a validation failure detected before any character
// is transformed.
//
// Validation errors include:
//   - Empty key: key string has no usable symbols after filtering
//   - Invalid key: key fails an algorithm-specific structural or numeric check
//   - No inverse: modular inverse requested for a non-invertible value
//   - Text too long: text exceeds the capacity of a grille mask or route grid
//
// Error includes structured fields for diagnostics. A transform that
// returns an Error produces no partial output.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Algorithm identifies the cipher that rejected the input.
	Algorithm string

	// Value is the offending key or text fragment, for display.
	Value string
}

// ErrorCode categorizes validation errors.
type ErrorCode string

const (
	// ErrCodeEmptyKey indicates a key with zero usable symbols after filtering.
	ErrCodeEmptyKey ErrorCode = "EMPTY_KEY"

	// ErrCodeInvalidKey indicates a key that fails a structural or numeric check.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"

	// ErrCodeNoInverse indicates a value with no modular inverse.
	ErrCodeNoInverse ErrorCode = "NO_INVERSE"

	// ErrCodeTextTooLong indicates text exceeding a grid's capacity.
	ErrCodeTextTooLong ErrorCode = "TEXT_TOO_LONG"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Algorithm != "" && e.Value != "" {
		return fmt.Sprintf("%s: %s (cipher=%s, value=%q)", e.Code, e.Message, e.Algorithm, e.Value)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s: %s (cipher=%s)", e.Code, e.Message, e.Algorithm)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsEmptyKey returns true if the error is an empty key error.
// Uses errors.As to handle wrapped errors.
func IsEmptyKey(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeEmptyKey
	}
	return false
}

// IsInvalidKey returns true if the error is an invalid key error.
// A NO_INVERSE error also counts: validity is checked before any
// inverse is computed, so a surfaced NO_INVERSE means the key was bad.
func IsInvalidKey(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidKey || ce.Code == ErrCodeNoInverse
	}
	return false
}

// IsTextTooLong returns true if the error is a text capacity error.
func IsTextTooLong(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeTextTooLong
	}
	return false
}

// NewEmptyKeyError creates an Error for a key with no usable symbols.
func NewEmptyKeyError(algorithm, key string) *Error {
	return &Error{
		Code:      ErrCodeEmptyKey,
		Message:   "key has no usable symbols after filtering",
		Algorithm: algorithm,
		Value:     key,
	}
}

// NewInvalidKeyError creates an Error for a structurally invalid key.
func NewInvalidKeyError(algorithm, value, message string) *Error {
	return &Error{
		Code:      ErrCodeInvalidKey,
		Message:   message,
		Algorithm: algorithm,
		Value:     value,
	}
}

// NewNoInverseError creates an Error for a value with no inverse mod m.
func NewNoInverseError(a, m int) *Error {
	return &Error{
		Code:    ErrCodeNoInverse,
		Message: fmt.Sprintf("%d has no inverse mod %d", a, m),
		Value:   fmt.Sprintf("%d", a),
	}
}

// NewTextTooLongError creates an Error for text exceeding grid capacity.
func NewTextTooLongError(algorithm string, length, capacity int) *Error {
	return &Error{
		Code:      ErrCodeTextTooLong,
		Message:   fmt.Sprintf("text length %d exceeds capacity %d", length, capacity),
		Algorithm: algorithm,
	}
}
