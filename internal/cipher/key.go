package cipher

// Key is a sealed interface over the per-family key shapes. Only the
// types in this file implement it, so a transform handed the wrong
// variant is a programming error caught at the registry boundary, not
// a stringly-typed runtime guess.
//
// Variants map one-to-one onto the key column of the algorithm table:
// an integer shift, an (a, b) pair, a letter string, a digit string, a
// 2x2 matrix, rail/grid dimensions, a digit-string pair, or a boolean
// mask.
type Key interface {
	key() // Sealed - only these types implement it
}

// ShiftKey is a single integer shift (Caesar). Any integer is accepted;
// it is reduced mod 26 before use.
type ShiftKey int

func (ShiftKey) key() {}

// AffineKey holds the (a, b) coefficients of an affine transform.
// A must be coprime with 26.
type AffineKey struct {
	A, B int
}

func (AffineKey) key() {}

// TextKey is a letter-string key (Vigenere, Beaufort, Auto-Key,
// Running-Key, Myszkowski). Filtering and case folding happen inside
// the transforms, so the raw user string is kept here.
type TextKey string

func (TextKey) key() {}

// DigitKey is a digit-string key (Gronsfeld shifts, Columnar column
// order).
type DigitKey string

func (DigitKey) key() {}

// MatrixKey is the 2x2 Hill key matrix.
type MatrixKey Matrix

func (MatrixKey) key() {}

// RailKey is the rail count for Rail Fence. Must be >= 2.
type RailKey int

func (RailKey) key() {}

// DimsKey holds the grid dimensions for the Route cipher. Both must
// be >= 2.
type DimsKey struct {
	Rows, Cols int
}

func (DimsKey) key() {}

// PairKey holds the two digit keys of a Double Transposition.
type PairKey struct {
	First, Second DigitKey
}

func (PairKey) key() {}

// MaskKey is the Grille hole mask: true marks a hole. Every row has
// the same length (validated when the mask is parsed).
type MaskKey [][]bool

func (MaskKey) key() {}

// Holes returns the number of holes in the mask.
func (m MaskKey) Holes() int {
	n := 0
	for _, row := range m {
		for _, hole := range row {
			if hole {
				n++
			}
		}
	}
	return n
}
