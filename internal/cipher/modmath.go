package cipher

// alphabetSize is the modulus for every numeric key operation.
// The engine works over the Latin 26-letter alphabet only.
const alphabetSize = 26

// Mod returns n mod m with the result always in [0, m).
//
// Go's % operator truncates toward zero, so -1 % 26 == -1. Every place a
// shift can go negative (decryption, Beaufort subtraction) must use Mod
// instead of %.
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. Used to validate coprimality of multiplicative keys.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x in [1, m) such that a*x ≡ 1 (mod m).
//
// The search is brute force. The modulus is always 26 here, so the search
// space is trivially small and a simple scan is clearer than the extended
// Euclidean algorithm. Returns a NO_INVERSE error when gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	a = Mod(a, m)
	for x := 1; x < m; x++ {
		if Mod(a*x, m) == 1 {
			return x, nil
		}
	}
	return 0, NewNoInverseError(a, m)
}
