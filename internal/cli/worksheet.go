package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/worksheet"
)

// WorksheetOptions holds flags for the worksheet command.
type WorksheetOptions struct {
	*RootOptions
	ShowSteps bool
}

// ExerciseReport is the JSON shape for one graded exercise.
type ExerciseReport struct {
	Name   string   `json:"name,omitempty"`
	Cipher string   `json:"cipher"`
	Mode   string   `json:"mode"`
	Text   string   `json:"text"`
	Output string   `json:"output,omitempty"`
	Graded bool     `json:"graded"`
	Passed bool     `json:"passed,omitempty"`
	Error  string   `json:"error,omitempty"`
	Steps  []string `json:"steps,omitempty"`
}

// WorksheetReport is the overall worksheet result.
type WorksheetReport struct {
	Title     string           `json:"title"`
	Exercises []ExerciseReport `json:"exercises"`
	Graded    int              `json:"graded"`
	Passed    int              `json:"passed"`
}

// NewWorksheetCommand creates the worksheet command.
func NewWorksheetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WorksheetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "worksheet <file.cue>",
		Short: "Compile and run a CUE worksheet",
		Long: `Compile a CUE worksheet file and run its exercises.

Exercises with an 'expect' field are graded against it; the others
just print their output.

Exit codes:
  0 - Worksheet compiled and all graded exercises passed
  1 - A graded exercise failed or an exercise errored
  2 - Command error (file not found, compile error)

Examples:
  cipherlab worksheet drills.cue
  cipherlab worksheet drills.cue --steps --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorksheet(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowSteps, "steps", false, "include each exercise's step trace")

	return cmd
}

func runWorksheet(opts *WorksheetOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ws, err := worksheet.Load(path)
	if err != nil {
		_ = formatter.Error("COMPILE_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to compile worksheet", err)
	}
	formatter.VerboseLog("compiled worksheet %q with %d exercises", ws.Title, len(ws.Exercises))

	report := worksheet.Run(ws)

	out := WorksheetReport{
		Title:  ws.Title,
		Graded: report.Graded,
		Passed: report.Passed,
	}
	for _, res := range report.Results {
		exReport := ExerciseReport{
			Name:   res.Exercise.Name,
			Cipher: res.Exercise.Cipher,
			Mode:   res.Exercise.Mode.String(),
			Text:   res.Exercise.Text,
			Output: res.Output,
			Graded: res.Graded,
			Passed: res.Passed,
		}
		if res.Err != nil {
			exReport.Error = res.Err.Error()
		}
		if opts.ShowSteps {
			exReport.Steps = res.Trace
		}
		out.Exercises = append(out.Exercises, exReport)
	}

	if opts.Format == "json" {
		if err := formatter.Success(out); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", ws.Title)
		for i, ex := range out.Exercises {
			label := ex.Name
			if label == "" {
				label = fmt.Sprintf("exercise %d", i+1)
			}
			switch {
			case ex.Error != "":
				fmt.Fprintf(cmd.OutOrStdout(), "ERROR %s: %s\n", label, ex.Error)
			case ex.Graded && ex.Passed:
				fmt.Fprintf(cmd.OutOrStdout(), "PASS  %s: %s -> %s\n", label, ex.Text, ex.Output)
			case ex.Graded:
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %s -> %s\n", label, ex.Text, ex.Output)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "      %s: %s -> %s\n", label, ex.Text, ex.Output)
			}
			if opts.ShowSteps {
				for _, line := range ex.Steps {
					fmt.Fprintf(cmd.OutOrStdout(), "        %s\n", line)
				}
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d graded exercises passed\n", report.Passed, report.Graded)
	}

	if !report.AllPassed() {
		return NewExitError(ExitFailure, "worksheet has failing exercises")
	}
	return nil
}
