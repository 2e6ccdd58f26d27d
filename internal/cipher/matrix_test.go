package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Valid(t *testing.T) {
	testCases := []struct {
		name  string
		m     Matrix
		valid bool
	}{
		{"classic hill key", Matrix{3, 3, 2, 5}, true},  // det 9
		{"identity", Matrix{1, 0, 0, 1}, true},          // det 1
		{"even determinant", Matrix{1, 2, 3, 4}, false}, // det -2
		{"singular", Matrix{2, 4, 1, 2}, false},         // det 0
		{"det thirteen", Matrix{3, 1, 1, 9}, false},     // det 26 -> 0
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.m.Valid())
		})
	}
}

func TestMatrix_Invert(t *testing.T) {
	m := Matrix{3, 3, 2, 5} // det 9, 9^-1 mod 26 = 3
	inv, err := m.Invert()
	require.NoError(t, err)
	assert.Equal(t, Matrix{15, 17, 20, 9}, inv)
}

func TestMatrix_Invert_RoundTripsVectors(t *testing.T) {
	m := Matrix{3, 3, 2, 5}
	inv, err := m.Invert()
	require.NoError(t, err)

	for x := 0; x < 26; x += 5 {
		for y := 0; y < 26; y += 7 {
			ex, ey := m.Apply(x, y)
			dx, dy := inv.Apply(ex, ey)
			assert.Equal(t, x, dx)
			assert.Equal(t, y, dy)
		}
	}
}

func TestMatrix_Invert_Singular(t *testing.T) {
	_, err := Matrix{2, 4, 1, 2}.Invert()
	require.Error(t, err)
	assert.True(t, IsInvalidKey(err))
}
