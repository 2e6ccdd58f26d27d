package cipher

import "fmt"

// spiralOrder returns the grid coordinates in clockwise spiral order:
// across the top, down the right edge, back across the bottom, up the
// left edge, with the bounds shrinking after each pass.
func spiralOrder(rows, cols int) [][2]int {
	order := make([][2]int, 0, rows*cols)
	top, bottom, left, right := 0, rows-1, 0, cols-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			order = append(order, [2]int{top, c})
		}
		for r := top + 1; r <= bottom; r++ {
			order = append(order, [2]int{r, right})
		}
		if top < bottom {
			for c := right - 1; c >= left; c-- {
				order = append(order, [2]int{bottom, c})
			}
		}
		if left < right {
			for r := bottom - 1; r > top; r-- {
				order = append(order, [2]int{r, left})
			}
		}
		top, bottom, left, right = top+1, bottom-1, left+1, right-1
	}
	return order
}

// Route writes the text row-major into a rows x cols grid and reads it
// back in clockwise spiral order (encryption), or writes the ciphertext
// along the spiral and reads row-major (decryption). Both dimensions
// must be at least 2, and the text must fit the grid. Text shorter than
// the grid leaves trailing cells unfilled; unfilled cells are skipped
// on both paths, which keeps the transform exactly length-preserving.
func Route(text string, rows, cols int, mode Mode, rec Recorder) (string, error) {
	if rows < 2 || cols < 2 {
		return "", NewInvalidKeyError("route", fmt.Sprintf("%dx%d", rows, cols), "both grid dimensions must be at least 2")
	}
	runes := []rune(text)
	if len(runes) > rows*cols {
		return "", NewTextTooLongError("route", len(runes), rows*cols)
	}

	// The filled cells are always the row-major prefix of the grid,
	// so both directions agree on which spiral slots are live.
	g := newGrid(rows, cols)
	order := spiralOrder(rows, cols)

	var out []rune
	if mode == Encrypt {
		record(rec, "encrypt through %dx%d grid, spiral read", rows, cols)
		g.fillRowMajor(runes)
		out = make([]rune, 0, len(runes))
		for _, pos := range order {
			if c := g.at(pos[0], pos[1]); c.filled {
				record(rec, "spiral read (%d,%d): %q", pos[0], pos[1], c.r)
				out = append(out, c.r)
			}
		}
	} else {
		record(rec, "decrypt through %dx%d grid, spiral write", rows, cols)
		filled := newGrid(rows, cols)
		filled.fillRowMajor(runes) // marks which cells encryption used
		next := 0
		for _, pos := range order {
			if filled.at(pos[0], pos[1]).filled {
				g.set(pos[0], pos[1], runes[next])
				record(rec, "spiral write (%d,%d): %q", pos[0], pos[1], runes[next])
				next++
			}
		}
		out = g.readRowMajor()
	}

	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}
