package cipher

import "strconv"

// railPattern returns the rail index of each character position: a
// zig-zag that bounces between rail 0 and rail rails-1.
func railPattern(n, rails int) []int {
	pattern := make([]int, n)
	rail, dir := 0, 1
	for i := 0; i < n; i++ {
		pattern[i] = rail
		if rail == 0 {
			dir = 1
		} else if rail == rails-1 {
			dir = -1
		}
		rail += dir
	}
	return pattern
}

// RailFence writes the text along rails in a zig-zag and reads the
// rails off top to bottom. The whole text enters the fence verbatim,
// so the transform is a pure position permutation and exactly
// length-preserving. The rail count must be at least 2.
func RailFence(text string, rails int, mode Mode, rec Recorder) (string, error) {
	if rails < 2 {
		return "", NewInvalidKeyError("railfence", strconv.Itoa(rails), "rail count must be at least 2")
	}
	runes := []rune(text)
	pattern := railPattern(len(runes), rails)

	var out []rune
	if mode == Encrypt {
		record(rec, "encrypt along %d rails", rails)
		out = make([]rune, 0, len(runes))
		for rail := 0; rail < rails; rail++ {
			row := make([]rune, 0, len(runes))
			for i, r := range runes {
				if pattern[i] == rail {
					row = append(row, r)
				}
			}
			record(rec, "rail %d: %s", rail, string(row))
			out = append(out, row...)
		}
	} else {
		record(rec, "decrypt along %d rails", rails)
		// Slice the ciphertext into rails by the zig-zag slot counts,
		// then walk the pattern again picking off each rail in turn.
		counts := make([]int, rails)
		for _, rail := range pattern {
			counts[rail]++
		}
		railRunes := make([][]rune, rails)
		offset := 0
		for rail := 0; rail < rails; rail++ {
			railRunes[rail] = runes[offset : offset+counts[rail]]
			record(rec, "rail %d holds: %s", rail, string(railRunes[rail]))
			offset += counts[rail]
		}
		next := make([]int, rails)
		out = make([]rune, 0, len(runes))
		for _, rail := range pattern {
			out = append(out, railRunes[rail][next[rail]])
			next[rail]++
		}
	}

	result := string(out)
	record(rec, "result: %s", result)
	return result, nil
}
