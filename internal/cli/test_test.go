package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const passingScenario = `name: caesar_basic
steps:
  - cipher: caesar
    key: "3"
    text: HELLO
    expect: KHOOR
`

const failingScenario = `name: caesar_wrong
steps:
  - cipher: caesar
    key: "3"
    text: HELLO
    expect: WRONG
`

func TestTestCommandAllPass(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "caesar_basic.yaml", passingScenario)

	stdout, _, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS  caesar_basic")
	assert.Contains(t, stdout, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailure(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "caesar_basic.yaml", passingScenario)
	writeScenario(t, dir, "caesar_wrong.yaml", failingScenario)

	stdout, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "FAIL  caesar_wrong")
	assert.Contains(t, stdout, "1 passed, 1 failed, 2 total")
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "caesar_basic.yaml", passingScenario)
	writeScenario(t, dir, "caesar_wrong.yaml", failingScenario)

	stdout, _, err := execute(t, "test", dir, "--filter", "caesar_basic")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 passed, 0 failed, 1 total")
}

func TestTestCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "caesar_basic.yaml", passingScenario)

	stdout, _, err := execute(t, "test", dir, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Passed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.True(t, resp.Data.Scenarios[0].Pass)
}

func TestTestCommandMissingDir(t *testing.T) {
	_, _, err := execute(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
