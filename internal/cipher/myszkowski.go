package cipher

// myszkowskiRanks maps each key letter to its rank: the ordinal of the
// letter among the key's sorted distinct letters. Repeated letters
// share a rank, which is what distinguishes Myszkowski from plain
// columnar transposition.
func myszkowskiRanks(key []rune) []int {
	var seen [alphabetSize]bool
	for _, r := range key {
		seen[letterValue(r)] = true
	}
	var rankOf [alphabetSize]int
	rank := 0
	for v := 0; v < alphabetSize; v++ {
		if seen[v] {
			rankOf[v] = rank
			rank++
		}
	}
	ranks := make([]int, len(key))
	for i, r := range key {
		ranks[i] = rankOf[letterValue(r)]
	}
	return ranks
}

// Myszkowski transposes the alphanumeric projection through a grid
// keyed by a letter string that may repeat letters. Columns are
// processed in ascending rank order; columns sharing a rank are read
// together row by row (interleaved) rather than one full column at a
// time. Decryption walks the same traversal, assigning ciphertext
// characters back into their grid slots.
func Myszkowski(text, key string, mode Mode, rec Recorder) (string, error) {
	k, err := processTextKey("myszkowski", key)
	if err != nil {
		return "", err
	}

	projected := alnumProjection(text)
	n := len(projected)
	cols := len(k)
	ranks := myszkowskiRanks(k)

	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}

	// The traversal order is identical for both directions: for each
	// rank, row by row across that rank's columns. A single-column
	// rank group degenerates to reading straight down the column.
	record(rec, "%s with key %s (%d columns, %d ranks)", mode, string(k), cols, maxRank+1)
	var slots []int
	rows := (n + cols - 1) / cols
	for rank := 0; rank <= maxRank; rank++ {
		group := make([]int, 0, cols)
		for col, r := range ranks {
			if r == rank {
				group = append(group, col)
			}
		}
		record(rec, "rank %d covers columns %v", rank, group)
		for row := 0; row < rows; row++ {
			for _, col := range group {
				if idx := row*cols + col; idx < n {
					slots = append(slots, idx)
				}
			}
		}
	}

	out := make([]rune, n)
	if mode == Encrypt {
		for i, idx := range slots {
			out[i] = projected[idx]
		}
	} else {
		for i, idx := range slots {
			out[idx] = projected[i]
		}
	}

	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}
