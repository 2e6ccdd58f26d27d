package cipher

// The polyalphabetic family: Vigenere, Gronsfeld, Beaufort, Auto-Key,
// Running-Key. All five consume a key stream of per-character shifts,
// one shift per alphabetic input character. They differ only in how
// the stream is derived from the key: cycling letters, cycling digits,
// reciprocal subtraction, growth from the text itself, or positional
// tiling.

// Vigenere shifts each letter by the cycling key letters' values:
// E adds, D subtracts, mod 26. Non-letter key characters are stripped
// and case is ignored; an empty key after filtering is rejected.
func Vigenere(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processTextKey("vigenere", key)
	if err != nil {
		return "", err
	}
	record(rec, "%s with key %s", mode, string(k))
	pos := 0
	out := mapLetters(text, rec, func(r rune, idx int) int {
		kr := k[pos%len(k)]
		shift := letterValue(kr)
		pos++
		if mode == Decrypt {
			shift = -shift
		}
		mapped := Mod(idx+shift, alphabetSize)
		record(rec, "%q (%d) with key %q (%d) -> %q (%d)", r, idx, kr, letterValue(kr), letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out, nil
}

// Gronsfeld is Vigenere with a numeric key: each key digit 0-9 is used
// directly as the shift value, cycling. Non-digit key characters are
// stripped.
func Gronsfeld(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processDigitKey("gronsfeld", key)
	if err != nil {
		return "", err
	}
	record(rec, "%s with key %s", mode, string(k))
	pos := 0
	out := mapLetters(text, rec, func(r rune, idx int) int {
		kr := k[pos%len(k)]
		shift := int(kr - '0')
		pos++
		if mode == Decrypt {
			shift = -shift
		}
		mapped := Mod(idx+shift, alphabetSize)
		record(rec, "%q (%d) with digit %q -> %q (%d)", r, idx, kr, letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out, nil
}

// Beaufort applies the reciprocal transform C = (K - P) mod 26 with a
// cycling letter key. The same call decrypts its own output, so there
// is no mode parameter.
func Beaufort(text, key string, rec Recorder) (string, error) {
	k, err := processTextKey("beaufort", key)
	if err != nil {
		return "", err
	}
	record(rec, "beaufort with key %s", string(k))
	pos := 0
	out := mapLetters(text, rec, func(r rune, idx int) int {
		kr := k[pos%len(k)]
		pos++
		mapped := Mod(letterValue(kr)-idx, alphabetSize)
		record(rec, "%q (%d): (%d - %d) mod 26 -> %q (%d)", r, idx, letterValue(kr), idx, letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out, nil
}

// AutoKey extends the key stream with the message itself: the supplied
// key letters are consumed first, then the plaintext letters (when
// encrypting) or the letters decrypted so far (when decrypting). The
// stream therefore grows by one entry per letter processed and is
// always long enough. Decryption must rebuild the stream letter by
// letter, since each stream entry past the key depends on output
// already produced.
func AutoKey(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processTextKey("autokey", key)
	if err != nil {
		return "", err
	}
	record(rec, "%s with primer %s", mode, string(k))

	stream := make([]int, 0, len(k)+len(text))
	for _, r := range k {
		stream = append(stream, letterValue(r))
	}
	pos := 0
	out := mapLetters(text, rec, func(r rune, idx int) int {
		shift := stream[pos]
		pos++
		var mapped int
		if mode == Encrypt {
			mapped = Mod(idx+shift, alphabetSize)
			stream = append(stream, idx)
		} else {
			mapped = Mod(idx-shift, alphabetSize)
			stream = append(stream, mapped)
		}
		record(rec, "%q (%d) with stream shift %d -> %q (%d)", r, idx, shift, letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out, nil
}

// RunningKey tiles the processed key until it covers every alphabetic
// character of the text, then consumes it positionally. Unlike
// Vigenere's per-character cycling, the stream is precomputed once.
func RunningKey(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processTextKey("runningkey", key)
	if err != nil {
		return "", err
	}

	letters := 0
	for _, r := range text {
		if isLetter(r) {
			letters++
		}
	}
	stream := make([]rune, 0, letters)
	for len(stream) < letters {
		stream = append(stream, k...)
	}
	record(rec, "%s with running key %s", mode, string(stream[:letters]))

	pos := 0
	out := mapLetters(text, rec, func(r rune, idx int) int {
		kr := stream[pos]
		shift := letterValue(kr)
		pos++
		if mode == Decrypt {
			shift = -shift
		}
		mapped := Mod(idx+shift, alphabetSize)
		record(rec, "%q (%d) with key %q (%d) -> %q (%d)", r, idx, kr, letterValue(kr), letterAt(mapped, r), mapped)
		return mapped
	})
	record(rec, "result: %s", out)
	return out, nil
}
