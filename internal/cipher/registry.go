package cipher

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Family groups algorithms by transform style.
type Family string

const (
	FamilySubstitution   Family = "substitution"
	FamilyPolyalphabetic Family = "polyalphabetic"
	FamilyPolygraphic    Family = "polygraphic"
	FamilyTransposition  Family = "transposition"
)

// KeyKind names the key shape an algorithm expects, and selects how a
// user-supplied key string is parsed into a typed Key.
type KeyKind string

const (
	KeyNone      KeyKind = "none"       // Atbash
	KeyShift     KeyKind = "shift"      // integer, e.g. "3"
	KeyAffine    KeyKind = "affine"     // "a,b", e.g. "5,8"
	KeyLetters   KeyKind = "letters"    // letter string
	KeyDigits    KeyKind = "digits"     // digit string
	KeyMatrix    KeyKind = "matrix"     // "a,b,c,d" row-major
	KeyRails     KeyKind = "rails"      // integer >= 2
	KeyDims      KeyKind = "dims"       // "RxC", e.g. "4x5"
	KeyDigitPair KeyKind = "digit-pair" // "key1,key2"
	KeyMask      KeyKind = "mask"       // rows of 0/1 separated by "/"
)

// Algorithm describes one registered cipher: its identity, key shape,
// and the transform function dispatched with a typed Key.
type Algorithm struct {
	Name        string
	Family      Family
	KeyKind     KeyKind
	Description string

	// SelfReciprocal marks ciphers where the same transform serves
	// both directions (Atbash, Beaufort); mode is ignored for them.
	SelfReciprocal bool

	transform func(text string, key Key, mode Mode, rec Recorder) (string, error)
}

// Run normalizes the text to NFC and applies the transform. All
// callers that accept user input (CLI, harness, HTTP API, replay) go
// through Run so differently-composed Unicode inputs behave
// identically.
func (a Algorithm) Run(text string, key Key, mode Mode, rec Recorder) (string, error) {
	return a.transform(norm.NFC.String(text), key, mode, rec)
}

// ParseKey parses a user-supplied key string into the typed Key for
// this algorithm's key kind.
func (a Algorithm) ParseKey(spec string) (Key, error) {
	return ParseKey(a.Name, a.KeyKind, spec)
}

// wrongKey is the registry-boundary guard: Run was handed a Key
// variant that does not match the algorithm's kind.
func wrongKey(name string, key Key) error {
	return NewInvalidKeyError(name, fmt.Sprintf("%T", key), "key variant does not match algorithm")
}

// algorithms lists every cipher in declaration order. Lookup is by
// lowercase name.
var algorithms = []Algorithm{
	{
		Name: "atbash", Family: FamilySubstitution, KeyKind: KeyNone,
		Description:    "alphabet reflection, A<->Z",
		SelfReciprocal: true,
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			return Atbash(text, rec), nil
		},
	},
	{
		Name: "caesar", Family: FamilySubstitution, KeyKind: KeyShift,
		Description: "fixed shift mod 26",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(ShiftKey)
			if !ok {
				return "", wrongKey("caesar", key)
			}
			return Caesar(text, int(k), mode, rec), nil
		},
	},
	{
		Name: "affine", Family: FamilySubstitution, KeyKind: KeyAffine,
		Description: "a*x + b mod 26, a coprime with 26",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(AffineKey)
			if !ok {
				return "", wrongKey("affine", key)
			}
			return Affine(text, k.A, k.B, mode, rec)
		},
	},
	{
		Name: "vigenere", Family: FamilyPolyalphabetic, KeyKind: KeyLetters,
		Description: "cycling letter-key shifts",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(TextKey)
			if !ok {
				return "", wrongKey("vigenere", key)
			}
			return Vigenere(text, string(k), mode, rec)
		},
	},
	{
		Name: "gronsfeld", Family: FamilyPolyalphabetic, KeyKind: KeyDigits,
		Description: "cycling digit-key shifts",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(DigitKey)
			if !ok {
				return "", wrongKey("gronsfeld", key)
			}
			return Gronsfeld(text, string(k), mode, rec)
		},
	},
	{
		Name: "beaufort", Family: FamilyPolyalphabetic, KeyKind: KeyLetters,
		Description:    "reciprocal K - P mod 26",
		SelfReciprocal: true,
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(TextKey)
			if !ok {
				return "", wrongKey("beaufort", key)
			}
			return Beaufort(text, string(k), rec)
		},
	},
	{
		Name: "autokey", Family: FamilyPolyalphabetic, KeyKind: KeyLetters,
		Description: "key stream extended by the message itself",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(TextKey)
			if !ok {
				return "", wrongKey("autokey", key)
			}
			return AutoKey(text, string(k), mode, rec)
		},
	},
	{
		Name: "runningkey", Family: FamilyPolyalphabetic, KeyKind: KeyLetters,
		Description: "key tiled to text length, consumed positionally",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(TextKey)
			if !ok {
				return "", wrongKey("runningkey", key)
			}
			return RunningKey(text, string(k), mode, rec)
		},
	},
	{
		Name: "hill", Family: FamilyPolygraphic, KeyKind: KeyMatrix,
		Description: "2x2 matrix over 2-letter blocks",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(MatrixKey)
			if !ok {
				return "", wrongKey("hill", key)
			}
			return Hill(text, Matrix(k), mode, rec)
		},
	},
	{
		Name: "railfence", Family: FamilyTransposition, KeyKind: KeyRails,
		Description: "zig-zag across rails",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(RailKey)
			if !ok {
				return "", wrongKey("railfence", key)
			}
			return RailFence(text, int(k), mode, rec)
		},
	},
	{
		Name: "route", Family: FamilyTransposition, KeyKind: KeyDims,
		Description: "row-major grid read in clockwise spiral",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(DimsKey)
			if !ok {
				return "", wrongKey("route", key)
			}
			return Route(text, k.Rows, k.Cols, mode, rec)
		},
	},
	{
		Name: "columnar", Family: FamilyTransposition, KeyKind: KeyDigits,
		Description: "columns read in key-digit order",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(DigitKey)
			if !ok {
				return "", wrongKey("columnar", key)
			}
			return Columnar(text, string(k), mode, rec)
		},
	},
	{
		Name: "doubletransposition", Family: FamilyTransposition, KeyKind: KeyDigitPair,
		Description: "two chained columnar passes",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(PairKey)
			if !ok {
				return "", wrongKey("doubletransposition", key)
			}
			return DoubleTransposition(text, string(k.First), string(k.Second), mode, rec)
		},
	},
	{
		Name: "myszkowski", Family: FamilyTransposition, KeyKind: KeyLetters,
		Description: "columnar with repeated-letter ranks read interleaved",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(TextKey)
			if !ok {
				return "", wrongKey("myszkowski", key)
			}
			return Myszkowski(text, string(k), mode, rec)
		},
	},
	{
		Name: "grille", Family: FamilyTransposition, KeyKind: KeyMask,
		Description: "hole mask applied across four rotations",
		transform: func(text string, key Key, mode Mode, rec Recorder) (string, error) {
			k, ok := key.(MaskKey)
			if !ok {
				return "", wrongKey("grille", key)
			}
			return Grille(text, k, mode, rec)
		},
	},
}

// Algorithms returns every registered cipher in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Lookup finds an algorithm by name (case-insensitive).
func Lookup(name string) (Algorithm, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}

// ParseMode parses "encrypt" or "decrypt" (or the short forms "e"/"d").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "e":
		return Encrypt, nil
	case "decrypt", "d":
		return Decrypt, nil
	default:
		return Encrypt, fmt.Errorf("invalid mode %q: must be encrypt or decrypt", s)
	}
}

// ParseKey parses a key string into the typed variant for the given
// kind. Structural errors (malformed integers, ragged masks, rails
// below minimum) surface as INVALID_KEY; content filtering (stripping
// non-letters from a Vigenere key) is left to the transforms so the
// trace can narrate it.
func ParseKey(algorithm string, kind KeyKind, spec string) (Key, error) {
	switch kind {
	case KeyNone:
		return nil, nil

	case KeyShift:
		n, err := strconv.Atoi(strings.TrimSpace(spec))
		if err != nil {
			return nil, NewInvalidKeyError(algorithm, spec, "shift must be an integer")
		}
		return ShiftKey(n), nil

	case KeyAffine:
		a, b, err := parseIntPair(spec)
		if err != nil {
			return nil, NewInvalidKeyError(algorithm, spec, "affine key must be two integers a,b")
		}
		return AffineKey{A: a, B: b}, nil

	case KeyLetters:
		return TextKey(spec), nil

	case KeyDigits:
		return DigitKey(spec), nil

	case KeyMatrix:
		parts := strings.Split(spec, ",")
		if len(parts) != 4 {
			return nil, NewInvalidKeyError(algorithm, spec, "matrix key must be four integers a,b,c,d")
		}
		vals := make([]int, 4)
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, NewInvalidKeyError(algorithm, spec, "matrix key must be four integers a,b,c,d")
			}
			vals[i] = n
		}
		return MatrixKey(Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3]}), nil

	case KeyRails:
		n, err := strconv.Atoi(strings.TrimSpace(spec))
		if err != nil {
			return nil, NewInvalidKeyError(algorithm, spec, "rail count must be an integer")
		}
		return RailKey(n), nil

	case KeyDims:
		rows, cols, err := parseDims(spec)
		if err != nil {
			return nil, NewInvalidKeyError(algorithm, spec, "grid dimensions must be ROWSxCOLS")
		}
		return DimsKey{Rows: rows, Cols: cols}, nil

	case KeyDigitPair:
		parts := strings.SplitN(spec, ",", 2)
		if len(parts) != 2 {
			return nil, NewInvalidKeyError(algorithm, spec, "double transposition key must be two digit strings key1,key2")
		}
		return PairKey{First: DigitKey(strings.TrimSpace(parts[0])), Second: DigitKey(strings.TrimSpace(parts[1]))}, nil

	case KeyMask:
		return parseMask(algorithm, spec)

	default:
		return nil, NewInvalidKeyError(algorithm, spec, fmt.Sprintf("unknown key kind %q", kind))
	}
}

func parseIntPair(spec string) (int, int, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated integers")
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseDims(spec string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(spec)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected ROWSxCOLS")
	}
	rows, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// parseMask parses a grille mask from rows of '0'/'1' separated by '/'
// or newlines. Every row must have the same length.
func parseMask(algorithm, spec string) (MaskKey, error) {
	spec = strings.ReplaceAll(strings.TrimSpace(spec), "\n", "/")
	lines := strings.Split(spec, "/")
	mask := make(MaskKey, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '0':
				row = append(row, false)
			case '1':
				row = append(row, true)
			default:
				return nil, NewInvalidKeyError(algorithm, line, "mask rows may only contain 0 and 1")
			}
		}
		mask = append(mask, row)
	}
	if err := validateMask(mask); err != nil {
		return nil, err
	}
	return mask, nil
}
