package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMask(t *testing.T, spec string) MaskKey {
	t.Helper()
	key, err := ParseKey("grille", KeyMask, spec)
	require.NoError(t, err)
	return key.(MaskKey)
}

func TestGrille_SingleHoleWalksAllFourRotations(t *testing.T) {
	// One hole in a 2x2 mask visits each cell once across the four
	// rotations: write order is (0,0), (0,1), (1,1), (1,0).
	mask := mustMask(t, "10/00")
	out, err := Grille("ABCD", mask, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABDC", out)

	back, err := Grille(out, mask, Decrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCD", back)
}

func TestGrille_RoundTrip(t *testing.T) {
	testCases := []struct {
		name, mask, text string
	}{
		{"full 4x4 tiling", "1110/0100/0000/0000", "WEAREDISCOVERED0"},
		{"partial fill", "1110/0100/0000/0000", "FLEEATONCE"},
		{"rectangular", "100/000", "ABCD"},
		{"two holes 3x3", "100/000/010", "SECRETME"},
		{"single char", "10/00", "A"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mask := mustMask(t, tc.mask)
			enc, err := Grille(tc.text, mask, Encrypt, nil)
			require.NoError(t, err)
			assert.Equal(t, len([]rune(tc.text)), len([]rune(enc)))

			dec, err := Grille(enc, mask, Decrypt, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.text, dec)
		})
	}
}

func TestGrille_ProjectsToAlphanumeric(t *testing.T) {
	mask := mustMask(t, "10/00")
	withNoise, err := Grille("A B, CD!", mask, Encrypt, nil)
	require.NoError(t, err)
	plain, err := Grille("ABCD", mask, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, withNoise)
}

func TestGrille_RejectsOverflowingText(t *testing.T) {
	mask := mustMask(t, "10/00") // 1 hole, capacity 4
	_, err := Grille("ABCDE", mask, Encrypt, nil)
	require.Error(t, err)
	assert.True(t, IsTextTooLong(err))
}

func TestGrille_RejectsRaggedMask(t *testing.T) {
	_, err := ParseKey("grille", KeyMask, "10/000")
	require.Error(t, err)
	assert.True(t, IsInvalidKey(err))
}

func TestGrille_RejectsBadMaskSymbols(t *testing.T) {
	_, err := ParseKey("grille", KeyMask, "10/2x")
	require.Error(t, err)
	assert.True(t, IsInvalidKey(err))
}
