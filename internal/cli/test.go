package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario name filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name  string `json:"name"`
	Pass  bool   `json:"pass"`
	Error string `json:"error,omitempty"`
	Steps int    `json:"steps"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run scenario files",
		Long: `Run YAML scenario files through the harness.

Each scenario describes a sequence of transforms with expected outputs
and assertions over the combined step trace.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  cipherlab test ./scenarios
  cipherlab test ./scenarios --filter "caesar*"
  cipherlab test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by name glob")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	scenarios, err := harness.LoadScenarioDir(scenariosDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenarios", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := TestResult{}
	for _, scenario := range scenarios {
		if opts.Filter != "" {
			match, err := filepath.Match(opts.Filter, scenario.Name)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid filter", err)
			}
			if !match {
				continue
			}
		}

		formatter.VerboseLog("running scenario %s", scenario.Name)
		scenResult := ScenarioResult{Name: scenario.Name, Steps: len(scenario.Steps)}
		if runResult, err := harness.Run(scenario); err != nil {
			scenResult.Error = err.Error()
			result.Failed++
		} else {
			scenResult.Pass = true
			scenResult.Steps = len(runResult.Steps)
			result.Passed++
		}
		result.Scenarios = append(result.Scenarios, scenResult)
	}
	result.Total = len(result.Scenarios)

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for _, s := range result.Scenarios {
			if s.Pass {
				fmt.Fprintf(cmd.OutOrStdout(), "PASS  %s (%d steps)\n", s.Name, s.Steps)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s\n      %s\n", s.Name, s.Error)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}
