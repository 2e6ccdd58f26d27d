package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherworks/cipherlab/internal/store"
)

func TestEncryptText(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "caesar", "--key", "3", "--text", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Khoor\n", stdout)
}

func TestDecryptText(t *testing.T) {
	stdout, _, err := execute(t, "decrypt", "--cipher", "caesar", "--key", "3", "--text", "Khoor")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", stdout)
}

func TestEncryptWithSteps(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "atbash", "--text", "Go", "--steps")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tl\n")
	assert.Contains(t, stdout, "reflected")
}

func TestEncryptJSON(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "vigenere", "--key", "LEMON",
		"--text", "ATTACKATDAWN", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "LXFOPVEFRNHR", data["output"])
	assert.Equal(t, "vigenere", data["cipher"])
	assert.Equal(t, "encrypt", data["mode"])
}

func TestEncryptUnknownCipher(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "enigma", "--text", "HELLO")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "UNKNOWN_CIPHER")
}

func TestEncryptInvalidKey(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "caesar", "--key", "abc", "--text", "HELLO", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_KEY", resp.Error.Code)
}

func TestEncryptEmptyKeyCode(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "--cipher", "vigenere", "--key", "123", "--text", "HELLO", "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMPTY_KEY", resp.Error.Code)
}

func TestEncryptRecordsToDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	stdout, _, err := execute(t, "encrypt", "--cipher", "caesar", "--key", "3",
		"--text", "Hello", "--db", dbPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "session: ")

	// Pull the session ID back out and verify the stored run.
	var sessionID string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "session: ") {
			sessionID = strings.TrimPrefix(line, "session: ")
		}
	}
	require.NotEmpty(t, sessionID)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ReadSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "caesar", runs[0].Algorithm)
	assert.Equal(t, "Khoor", runs[0].Output)
	assert.NotEmpty(t, runs[0].Trace)
}

func TestEncryptAppendsToSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	stdout, _, err := execute(t, "encrypt", "--cipher", "caesar", "--key", "3",
		"--text", "Hello", "--db", dbPath)
	require.NoError(t, err)

	var sessionID string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "session: ") {
			sessionID = strings.TrimPrefix(line, "session: ")
		}
	}
	require.NotEmpty(t, sessionID)

	_, _, err = execute(t, "decrypt", "--cipher", "caesar", "--key", "3",
		"--text", "Khoor", "--db", dbPath, "--session", sessionID)
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ReadSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "decrypt", runs[1].Mode)
}
