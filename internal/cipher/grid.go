package cipher

// cell is one slot of a transposition grid. The filled flag is explicit
// so a literal space character in the text can never be confused with
// an empty slot.
type cell struct {
	r      rune
	filled bool
}

// grid is a transient rows x cols staging area for transposition
// ciphers. It exists only for the duration of one transform call.
type grid struct {
	rows, cols int
	cells      []cell
}

func newGrid(rows, cols int) *grid {
	return &grid{rows: rows, cols: cols, cells: make([]cell, rows*cols)}
}

func (g *grid) at(row, col int) cell {
	return g.cells[row*g.cols+col]
}

func (g *grid) set(row, col int, r rune) {
	g.cells[row*g.cols+col] = cell{r: r, filled: true}
}

// fillRowMajor writes text into the grid row by row, left to right.
// Cells past the end of the text stay unfilled.
func (g *grid) fillRowMajor(text []rune) {
	for i, r := range text {
		g.cells[i] = cell{r: r, filled: true}
	}
}

// readRowMajor returns the filled cells row by row, left to right.
func (g *grid) readRowMajor() []rune {
	out := make([]rune, 0, len(g.cells))
	for _, c := range g.cells {
		if c.filled {
			out = append(out, c.r)
		}
	}
	return out
}

// alnumProjection returns the subsequence of letters and digits in the
// text. Grid ciphers operate on this projection only; any other rune,
// spaces included, never enters the grid and is not round-tripped.
func alnumProjection(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if isLetter(r) || isDigit(r) {
			out = append(out, r)
		}
	}
	return out
}
