package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/caesar_round_trip.yaml")
	require.NoError(t, err)

	assert.Equal(t, "caesar_round_trip", scenario.Name)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, "caesar", scenario.Steps[0].Cipher)
	assert.Equal(t, "De!", scenario.Steps[0].Expect)
	assert.Len(t, scenario.Assertions, 4)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [unclosed"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenarioDir(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	// Sorted by file name.
	assert.Equal(t, "atbash_involution", scenarios[0].Name)
	assert.Equal(t, "caesar_round_trip", scenarios[1].Name)
	assert.Equal(t, "vigenere_chain", scenarios[2].Name)
}

func TestScenarioDirRuns(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			_, err := Run(scenario)
			require.NoError(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "missing name",
			scenario: Scenario{Steps: []Step{{Cipher: "caesar", Text: "A"}}},
			wantErr:  "name is required",
		},
		{
			name:     "no steps",
			scenario: Scenario{Name: "empty"},
			wantErr:  "at least one step",
		},
		{
			name: "missing cipher",
			scenario: Scenario{
				Name:  "no_cipher",
				Steps: []Step{{Text: "A"}},
			},
			wantErr: "cipher is required",
		},
		{
			name: "first step without text",
			scenario: Scenario{
				Name:  "no_text",
				Steps: []Step{{Cipher: "caesar", Key: "3"}},
			},
			wantErr: "text is required",
		},
		{
			name: "result_equals step out of range",
			scenario: Scenario{
				Name:       "bad_step",
				Steps:      []Step{{Cipher: "caesar", Key: "3", Text: "A"}},
				Assertions: []Assertion{{Type: "result_equals", Step: 2}},
			},
			wantErr: "out of range",
		},
		{
			name: "trace_contains without line",
			scenario: Scenario{
				Name:       "no_line",
				Steps:      []Step{{Cipher: "caesar", Key: "3", Text: "A"}},
				Assertions: []Assertion{{Type: "trace_contains"}},
			},
			wantErr: "requires a line",
		},
		{
			name: "unknown assertion type",
			scenario: Scenario{
				Name:       "bad_type",
				Steps:      []Step{{Cipher: "caesar", Key: "3", Text: "A"}},
				Assertions: []Assertion{{Type: "output_matches"}},
			},
			wantErr: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	scenario := Scenario{
		Name: "ok",
		Steps: []Step{
			{Cipher: "caesar", Key: "3", Text: "HELLO"},
			{Cipher: "caesar", Key: "3", Mode: "decrypt"},
		},
		Assertions: []Assertion{
			{Type: "round_trip"},
			{Type: "result_equals", Step: 1, Value: "KHOOR"},
		},
	}
	require.NoError(t, scenario.Validate())
}
