package cipher

import "sort"

// columnOrder returns the column indices sorted by ascending key digit.
// The sort is stable, so repeated digits fall back to left-to-right
// column order.
func columnOrder(key []rune) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key[order[a]] < key[order[b]]
	})
	return order
}

// columnLength returns how many cells column col holds when n
// characters fill a grid of width cols row-major: the last row may be
// short, so leading columns can be one cell longer than trailing ones.
func columnLength(n, cols, col int) int {
	length := n / cols
	if col < n%cols {
		length++
	}
	return length
}

// Columnar transposes the alphanumeric projection of the text through
// a grid whose columns are read in ascending key-digit order. The key
// is a digit string; its length sets the grid width. Decryption first
// computes the exact filled length of every column from the digit
// ranking, since the last grid row may be short.
func Columnar(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processDigitKey("columnar", key)
	if err != nil {
		return "", err
	}
	return columnarTransform("columnar", text, k, mode, rec)
}

// columnarTransform is the shared pass used by Columnar and (twice) by
// DoubleTransposition.
func columnarTransform(name, text string, key []rune, mode Mode, rec Recorder) (string, error) {
	projected := alnumProjection(text)
	n := len(projected)
	cols := len(key)
	order := columnOrder(key)

	var out []rune
	if mode == Encrypt {
		record(rec, "%s encrypt: %d characters across %d columns, key %s", name, n, cols, string(key))
		out = make([]rune, 0, n)
		for _, col := range order {
			colRunes := make([]rune, 0, columnLength(n, cols, col))
			for idx := col; idx < n; idx += cols {
				colRunes = append(colRunes, projected[idx])
			}
			record(rec, "read column %d (digit %q): %s", col, key[col], string(colRunes))
			out = append(out, colRunes...)
		}
	} else {
		record(rec, "%s decrypt: %d characters across %d columns, key %s", name, n, cols, string(key))
		cells := make([]rune, n)
		offset := 0
		for _, col := range order {
			length := columnLength(n, cols, col)
			record(rec, "column %d (digit %q) holds: %s", col, key[col], string(projected[offset:offset+length]))
			for row := 0; row < length; row++ {
				cells[row*cols+col] = projected[offset+row]
			}
			offset += length
		}
		out = cells
	}

	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}

// DoubleTransposition chains two columnar passes. Encryption applies
// the first key then the second; decryption undoes them in reverse
// order, which is exactly two columnar decrypts with the keys swapped.
func DoubleTransposition(text, key1, key2 string, mode Mode, rec Recorder) (string, error) {
	k1, err := processDigitKey("doubletransposition", key1)
	if err != nil {
		return "", err
	}
	k2, err := processDigitKey("doubletransposition", key2)
	if err != nil {
		return "", err
	}
	if mode == Decrypt {
		k1, k2 = k2, k1
	}
	record(rec, "double transposition %s: first pass", mode)
	mid, err := columnarTransform("pass 1", text, k1, mode, rec)
	if err != nil {
		return "", err
	}
	record(rec, "double transposition %s: second pass", mode)
	return columnarTransform("pass 2", mid, k2, mode, rec)
}
