package cipher

import "strconv"

// The substitution family: Atbash, Caesar, Affine. Single-character
// value substitutions over the case-preserving mapper; key arithmetic
// is all mod 26.

// Atbash reflects each letter across the alphabet: A<->Z, B<->Y, and so
// on, per case. There is no key and the transform is self-inverse, so
// there is no mode parameter either.
func Atbash(text string, rec Recorder) string {
	out := mapLetters(text, rec, func(r rune, idx int) int {
		mapped := alphabetSize - 1 - idx
		record(rec, "%q (%d) reflected to %q (%d)", r, idx, letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out
}

// Caesar shifts each letter by the key amount: E(x) = (x + k) mod 26.
// Decryption shifts by the complement. Any integer key is accepted and
// normalized into [0, 26) first.
func Caesar(text string, shift int, mode Mode, rec Recorder) string {
	k := Mod(shift, alphabetSize)
	if mode == Decrypt {
		k = Mod(alphabetSize-k, alphabetSize)
	}
	record(rec, "%s with shift %d", mode, k)
	out := mapLetters(text, rec, func(r rune, idx int) int {
		mapped := Mod(idx+k, alphabetSize)
		record(rec, "%q (%d) + %d -> %q (%d)", r, idx, k, letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out
}

// Affine applies E(x) = (a*x + b) mod 26, or for decryption
// D(y) = a^-1 * (y - b) mod 26. The multiplier a must be coprime with
// 26 or the transform is not invertible; such keys are rejected with
// INVALID_KEY before any character is touched.
func Affine(text string, a, b int, mode Mode, rec Recorder) (string, error) {
	if GCD(a, alphabetSize) != 1 {
		return "", NewInvalidKeyError("affine", strconv.Itoa(a), "multiplier a must be coprime with 26")
	}

	var out string
	if mode == Encrypt {
		record(rec, "encrypt with a=%d b=%d", a, b)
		out = mapLetters(text, rec, func(r rune, idx int) int {
			mapped := Mod(a*idx+b, alphabetSize)
			record(rec, "%q (%d): (%d*%d + %d) mod 26 -> %q (%d)", r, idx, a, idx, b, letterAt(mapped, r), mapped)
			return mapped
		})
	} else {
		// Validity was checked above, so the inverse always exists.
		aInv, err := ModInverse(a, alphabetSize)
		if err != nil {
			return "", err
		}
		record(rec, "decrypt with a=%d b=%d, a^-1=%d", a, b, aInv)
		out = mapLetters(text, rec, func(r rune, idx int) int {
			mapped := Mod(aInv*(idx-b), alphabetSize)
			record(rec, "%q (%d): %d*(%d - %d) mod 26 -> %q (%d)", r, idx, aInv, idx, b, letterAt(mapped, r), mapped)
			return mapped
		})
	}
	record(rec, "result: %s", out)
	return out, nil
}
