package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRailFence_LiteralExample(t *testing.T) {
	out, err := RailFence("WEAREDISCOVEREDFLEEATONCE", 3, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "WECRLTEERDSOEEFEAOCAIVDEN", out)

	back, err := RailFence(out, 3, Decrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "WEAREDISCOVEREDFLEEATONCE", back)
}

func TestRailFence_TakesTextVerbatim(t *testing.T) {
	// Rail fence is a pure position permutation: spaces and
	// punctuation ride the fence like any other character.
	text := "we are discovered, flee!"
	enc, err := RailFence(text, 4, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, len([]rune(text)), len([]rune(enc)))

	dec, err := RailFence(enc, 4, Decrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, text, dec)
}

func TestRailFence_RoundTripAcrossRailCounts(t *testing.T) {
	text := "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"
	for rails := 2; rails <= 12; rails++ {
		enc, err := RailFence(text, rails, Encrypt, nil)
		require.NoError(t, err, "rails=%d", rails)
		dec, err := RailFence(enc, rails, Decrypt, nil)
		require.NoError(t, err, "rails=%d", rails)
		assert.Equal(t, text, dec, "rails=%d", rails)
	}
}

func TestRailFence_MoreRailsThanText(t *testing.T) {
	enc, err := RailFence("ABC", 10, Encrypt, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", enc)
}

func TestRailFence_RejectsSingleRail(t *testing.T) {
	for _, rails := range []int{1, 0, -3} {
		_, err := RailFence("text", rails, Encrypt, nil)
		require.Error(t, err, "rails=%d", rails)
		assert.True(t, IsInvalidKey(err))
	}
}
