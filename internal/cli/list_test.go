package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListText(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NAME")
	for _, name := range []string{"atbash", "caesar", "affine", "vigenere", "gronsfeld",
		"beaufort", "autokey", "runningkey", "hill", "railfence", "route",
		"columnar", "doubletransposition", "myszkowski", "grille"} {
		assert.Contains(t, stdout, name)
	}
}

func TestListJSON(t *testing.T) {
	stdout, _, err := execute(t, "list", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   []AlgorithmInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 15)

	assert.Equal(t, "atbash", resp.Data[0].Name)
	assert.Equal(t, "substitution", resp.Data[0].Family)
	assert.Equal(t, "none", resp.Data[0].KeyKind)
	assert.True(t, resp.Data[0].SelfReciprocal)
}
