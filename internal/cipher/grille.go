package cipher

import "fmt"

// rotateMask rotates the hole mask 90 degrees clockwise, swapping
// dimensions for rectangular masks: newMask[j][rows-1-i] = mask[i][j].
func rotateMask(mask [][]bool) [][]bool {
	rows, cols := len(mask), len(mask[0])
	out := make([][]bool, cols)
	for j := range out {
		out[j] = make([]bool, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j][rows-1-i] = mask[i][j]
		}
	}
	return out
}

// validateMask rejects empty or ragged masks.
func validateMask(mask MaskKey) error {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return NewInvalidKeyError("grille", "", "mask must have at least one row and column")
	}
	for i, row := range mask {
		if len(row) != len(mask[0]) {
			return NewInvalidKeyError("grille", fmt.Sprintf("row %d", i), "mask rows must all have equal length")
		}
	}
	return nil
}

// Grille applies a perforated mask across four successive 90-degree
// clockwise rotations. Encryption writes the alphanumeric projection of
// the text into the holes, rotation by rotation, then reads the
// completed grid row-major; decryption fills the grid row-major with
// ciphertext and reads back through the holes across the same four
// rotations in the same order.
//
// The grid is a flat cell buffer whose view dimensions follow the
// mask: each rotation swaps rows and columns, so rectangular masks
// stay well-defined, and after all four rotations the view is back in
// its original orientation. A hole landing on a cell already used by
// an earlier rotation is skipped identically on both paths. Text
// longer than the usable hole capacity is rejected with TEXT_TOO_LONG.
func Grille(text string, mask MaskKey, mode Mode, rec Recorder) (string, error) {
	if err := validateMask(mask); err != nil {
		return "", err
	}
	projected := alnumProjection(text)
	n := len(projected)
	holes := mask.Holes()
	if n > holes*4 {
		return "", NewTextTooLongError("grille", n, holes*4)
	}
	rows, cols := len(mask), len(mask[0])

	if mode == Encrypt {
		record(rec, "encrypt through %dx%d grille, %d holes, %d characters", rows, cols, holes, n)
		cells, written := writeThroughHoles(mask, projected, rec)
		if written < n {
			// Holes overlapping across rotations reduce capacity.
			return "", NewTextTooLongError("grille", n, written)
		}
		out := make([]rune, 0, n)
		for _, c := range cells {
			if c.filled {
				out = append(out, c.r)
			}
		}
		result := string(out)
		record(rec, "result: %s", result)
		return result, nil
	}

	record(rec, "decrypt through %dx%d grille, %d holes, %d characters", rows, cols, holes, n)
	// Rebuild the set of cells encryption filled, place the ciphertext
	// into them row-major, then consume the holes in rotation order.
	marked, _ := writeThroughHoles(mask, projected, nil)
	cells := make([]cell, rows*cols)
	next := 0
	for i := range marked {
		if marked[i].filled {
			cells[i] = cell{r: projected[next], filled: true}
			next++
		}
	}
	out := make([]rune, 0, n)
	m := [][]bool(mask)
	for step := 0; step < 4; step++ {
		r, c := len(m), len(m[0])
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				idx := i*c + j
				if m[i][j] && cells[idx].filled {
					record(rec, "rotation %d read (%d,%d): %q", step*90, i, j, cells[idx].r)
					out = append(out, cells[idx].r)
					cells[idx].filled = false
				}
			}
		}
		m = rotateMask(m)
	}
	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}

// writeThroughHoles writes text into the mask's holes across four
// rotations over a flat cell buffer and returns the buffer plus the
// number of characters placed. The buffer's view dimensions follow the
// rotated mask; cells already used by an earlier rotation are skipped.
func writeThroughHoles(mask MaskKey, text []rune, rec Recorder) ([]cell, int) {
	cells := make([]cell, len(mask)*len(mask[0]))
	m := [][]bool(mask)
	next := 0
	for step := 0; step < 4; step++ {
		r, c := len(m), len(m[0])
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				idx := i*c + j
				if next < len(text) && m[i][j] && !cells[idx].filled {
					record(rec, "rotation %d write (%d,%d): %q", step*90, i, j, text[next])
					cells[idx] = cell{r: text[next], filled: true}
					next++
				}
			}
		}
		m = rotateMask(m)
	}
	return cells, next
}
