package cipher

// hillPad fills the alphabetic projection out to an even length so the
// text divides into 2-blocks.
const hillPad = 'X'

// Hill is the 2x2 polygraphic cipher. The alphabetic projection of the
// text, uppercased and padded with 'X' to an even length, is processed
// in blocks of two: each block is treated as a column vector and
// multiplied by the key matrix (or its modular inverse for decryption)
// mod 26. The transformed letters are then interleaved back into the
// original character positions with their original case; non-letters
// pass through untouched.
//
// The padding letter appended for odd-length alphabetic content stays
// in the output, so round-trip holds on the padded projection rather
// than on the original string verbatim.
func Hill(text string, key Matrix, mode Mode, rec Recorder) (string, error) {
	if !key.Valid() {
		return "", NewInvalidKeyError("hill", key.String(), "determinant mod 26 must be coprime with 26")
	}
	m := key
	if mode == Decrypt {
		inv, err := key.Invert()
		if err != nil {
			return "", err
		}
		m = inv
		record(rec, "decrypt with inverse matrix %s", m)
	} else {
		record(rec, "encrypt with matrix %s", m)
	}

	// Alphabetic projection, uppercased, padded to even length.
	projected := make([]rune, 0, len(text)+1)
	for _, r := range text {
		if isLetter(r) {
			projected = append(projected, upper(r))
		}
	}
	padded := false
	if len(projected)%2 != 0 {
		projected = append(projected, hillPad)
		padded = true
		record(rec, "padded projection with %q to even length %d", hillPad, len(projected))
	}

	transformed := make([]rune, len(projected))
	for i := 0; i < len(projected); i += 2 {
		x, y := letterValue(projected[i]), letterValue(projected[i+1])
		tx, ty := m.Apply(x, y)
		transformed[i] = rune('A' + tx)
		transformed[i+1] = rune('A' + ty)
		record(rec, "block %c%c (%d,%d) -> %c%c (%d,%d)",
			projected[i], projected[i+1], x, y, transformed[i], transformed[i+1], tx, ty)
	}

	// Re-interleave into the original positions, restoring case. The
	// padding letter, if any, has no original position and is appended.
	out := make([]rune, 0, len(text)+1)
	pos := 0
	for _, r := range text {
		if !isLetter(r) {
			record(rec, "%q passed through", r)
			out = append(out, r)
			continue
		}
		out = append(out, letterAt(letterValue(transformed[pos]), r))
		pos++
	}
	if padded {
		out = append(out, transformed[len(transformed)-1])
	}

	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}
