package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtbash_Reflects(t *testing.T) {
	assert.Equal(t, "Svool", Atbash("Hello", nil))
	assert.Equal(t, "ZY", Atbash("AB", nil))
	assert.Equal(t, "z y!", Atbash("a b!", nil))
}

func TestAtbash_SelfInverse(t *testing.T) {
	for _, text := range []string{"", "Hello, World!", "The quick brown fox", "1234 %$"} {
		assert.Equal(t, text, Atbash(Atbash(text, nil), nil))
	}
}

func TestCaesar_LiteralExample(t *testing.T) {
	// Uppercase H and lowercase ello shift identically, case preserved.
	assert.Equal(t, "Khoor", Caesar("Hello", 3, Encrypt, nil))
	assert.Equal(t, "Hello", Caesar("Khoor", 3, Decrypt, nil))
}

func TestCaesar_KeyNormalization(t *testing.T) {
	testCases := []struct {
		name  string
		shift int
	}{
		{"zero", 0},
		{"full alphabet", 26},
		{"beyond alphabet", 29},
		{"negative", -3},
		{"large negative", -55},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc := Caesar("Attack at dawn!", tc.shift, Encrypt, nil)
			assert.Equal(t, "Attack at dawn!", Caesar(enc, tc.shift, Decrypt, nil))
		})
	}

	// Shifts congruent mod 26 produce identical output.
	assert.Equal(t, Caesar("abc", 3, Encrypt, nil), Caesar("abc", 29, Encrypt, nil))
	assert.Equal(t, Caesar("abc", 23, Encrypt, nil), Caesar("abc", -3, Encrypt, nil))
}

func TestCaesar_NonAlphabeticPassthrough(t *testing.T) {
	assert.Equal(t, "1, 2: d!", Caesar("1, 2: a!", 3, Encrypt, nil))
}

func TestAffine_LiteralExample(t *testing.T) {
	out, err := Affine("AFFINECIPHER", 5, 8, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "IHHWVCSWFRCP", out)

	back, err := Affine(out, 5, 8, Decrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "AFFINECIPHER", back)
}

func TestAffine_RejectsNonCoprimeMultiplier(t *testing.T) {
	for _, a := range []int{2, 4, 13, 26} {
		_, err := Affine("text", a, 1, Encrypt, nil)
		require.Error(t, err, "a=%d", a)
		assert.True(t, IsInvalidKey(err), "a=%d", a)
	}
}

func TestAffine_AcceptsEveryCoprimeMultiplier(t *testing.T) {
	for _, a := range []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25} {
		enc, err := Affine("Mixed Case, punctuated!", a, 7, Encrypt, nil)
		require.NoError(t, err, "a=%d", a)
		dec, err := Affine(enc, a, 7, Decrypt, nil)
		require.NoError(t, err, "a=%d", a)
		assert.Equal(t, "Mixed Case, punctuated!", dec, "a=%d", a)
	}
}

func TestSubstitution_LengthPreserving(t *testing.T) {
	text := "One char in, one char out; été stays put."
	assert.Equal(t, len([]rune(text)), len([]rune(Atbash(text, nil))))
	assert.Equal(t, len([]rune(text)), len([]rune(Caesar(text, 7, Encrypt, nil))))
	out, err := Affine(text, 11, 3, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, len([]rune(text)), len([]rune(out)))
}
