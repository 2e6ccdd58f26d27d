package cipher

// Mode selects the transform direction.
type Mode int

const (
	// Encrypt transforms plaintext to ciphertext.
	Encrypt Mode = iota

	// Decrypt transforms ciphertext back to plaintext.
	Decrypt
)

// String returns the mode name for trace and CLI output.
func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// The case-preserving alphabetic mapper: the shared per-character policy
// of every substitution-family cipher. Characters are classified as
// uppercase letter, lowercase letter, or other; letters of either case
// are shifted with the same numeric logic against their own base, and
// everything else passes through untouched without consuming the key
// stream. Every family member must apply this identically or key
// streams fall out of sync between encryption and decryption.

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// letterIndex returns the 0-25 alphabet index of a letter of either case.
// Callers must ensure r is a letter.
func letterIndex(r rune) int {
	if isLower(r) {
		return int(r - 'a')
	}
	return int(r - 'A')
}

// letterAt returns the letter at alphabet index i, matching the case of
// the template rune.
func letterAt(i int, template rune) rune {
	if isLower(template) {
		return 'a' + rune(Mod(i, alphabetSize))
	}
	return 'A' + rune(Mod(i, alphabetSize))
}

// shiftLetter shifts a letter by the given amount, preserving its case.
func shiftLetter(r rune, shift int) rune {
	return letterAt(letterIndex(r)+shift, r)
}

// mapLetters applies fn to each letter of text, preserving case and
// passing every other rune through unchanged. fn receives the 0-25
// index of the letter and returns the transformed index. The key-stream
// position only advances on letters because fn is only called on them.
func mapLetters(text string, rec Recorder, fn func(r rune, idx int) int) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if !isLetter(r) {
			record(rec, "%q passed through", r)
			out = append(out, r)
			continue
		}
		out = append(out, letterAt(fn(r, letterIndex(r)), r))
	}
	return string(out)
}

// letterValue returns the 0-25 value of an uppercase key letter.
func letterValue(r rune) int { return int(r - 'A') }

// upper folds an ASCII letter to uppercase; other runes are returned
// unchanged.
func upper(r rune) rune {
	if isLower(r) {
		return r - 'a' + 'A'
	}
	return r
}

// processTextKey uppercases the key and strips everything but letters.
// Returns an EMPTY_KEY error when nothing remains.
func processTextKey(algorithm, key string) ([]rune, error) {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		if isLetter(r) {
			out = append(out, upper(r))
		}
	}
	if len(out) == 0 {
		return nil, NewEmptyKeyError(algorithm, key)
	}
	return out, nil
}

// processDigitKey strips everything but digits from the key.
// Returns an EMPTY_KEY error when nothing remains.
func processDigitKey(algorithm, key string) ([]rune, error) {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		if isDigit(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, NewEmptyKeyError(algorithm, key)
	}
	return out, nil
}
