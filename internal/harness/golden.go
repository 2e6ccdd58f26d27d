package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the combined step trace
// against a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected trace output.
// Test failure (via goldie) occurs if the trace doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares a result's combined trace against a golden file.
// Useful when a scenario has already run and only the comparison is needed.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	trace := strings.Join(result.CombinedTrace(), "\n") + "\n"

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(trace))

	return nil
}
