package cipher

import "fmt"

// Matrix is a 2x2 integer matrix, the key shape for the Hill cipher.
//
//	| A  B |
//	| C  D |
type Matrix struct {
	A, B, C, D int
}

// String renders the matrix row-major for trace and error output.
func (m Matrix) String() string {
	return fmt.Sprintf("[%d %d; %d %d]", m.A, m.B, m.C, m.D)
}

// Det returns the determinant A*D - B*C, not reduced.
func (m Matrix) Det() int {
	return m.A*m.D - m.B*m.C
}

// Valid reports whether the matrix is usable as a Hill key: its
// determinant mod 26 must be coprime with 26, otherwise no modular
// inverse exists and decryption would be impossible.
func (m Matrix) Valid() bool {
	return GCD(Mod(m.Det(), alphabetSize), alphabetSize) == 1
}

// Invert returns the modular inverse of the matrix mod 26, computed as
// the adjugate scaled by the inverse of the determinant, with every
// entry reduced into [0, 26). Callers must check Valid first; an
// invalid matrix yields a NO_INVERSE error.
func (m Matrix) Invert() (Matrix, error) {
	detInv, err := ModInverse(m.Det(), alphabetSize)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{
		A: Mod(m.D*detInv, alphabetSize),
		B: Mod(-m.B*detInv, alphabetSize),
		C: Mod(-m.C*detInv, alphabetSize),
		D: Mod(m.A*detInv, alphabetSize),
	}, nil
}

// Apply multiplies the matrix by the column vector (x, y) mod 26.
func (m Matrix) Apply(x, y int) (int, int) {
	return Mod(m.A*x+m.B*y, alphabetSize), Mod(m.C*x+m.D*y, alphabetSize)
}
