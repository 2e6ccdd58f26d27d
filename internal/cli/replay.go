package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
}

// ReplayRunResult is the JSON shape for one replayed run.
type ReplayRunResult struct {
	Seq       int64  `json:"seq"`
	Algorithm string `json:"algorithm"`
	Match     bool   `json:"match"`
	Stored    string `json:"stored,omitempty"`
	Computed  string `json:"computed,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ReplaySessionResult is the JSON shape for a replayed session.
type ReplaySessionResult struct {
	Session       string            `json:"session"`
	Runs          []ReplayRunResult `json:"runs"`
	Deterministic bool              `json:"deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay [session-id]",
		Short: "Re-execute recorded runs and verify outputs",
		Long: `Re-execute recorded runs through the registry and compare the fresh
outputs against the stored ones.

Transforms are deterministic, so any divergence means the engine
changed behavior since the run was recorded, or the row was altered.
Without a session ID every session is replayed.

Exit codes:
  0 - All replayed runs match
  1 - One or more runs diverged
  2 - Command error (database not found, etc.)

Examples:
  cipherlab replay --db ./runs.db
  cipherlab replay --db ./runs.db 0190a5e2-... --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) == 1 {
				sessionID = args[0]
			}
			return runReplay(opts, sessionID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReplay(opts *ReplayOptions, sessionID string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var sessionIDs []string
	if sessionID != "" {
		sessionIDs = []string{sessionID}
	} else {
		sessions, err := st.ListSessions(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list sessions", err)
		}
		for _, sess := range sessions {
			sessionIDs = append(sessionIDs, sess.ID)
		}
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var sessionResults []ReplaySessionResult
	diverged := 0
	for _, id := range sessionIDs {
		results, err := st.ReplaySession(ctx, id)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay session %s", id), err)
		}

		sessResult := ReplaySessionResult{Session: id, Deterministic: true}
		for _, res := range results {
			runResult := ReplayRunResult{
				Seq:       res.Run.Seq,
				Algorithm: res.Run.Algorithm,
				Match:     res.Match,
			}
			if !res.Match {
				sessResult.Deterministic = false
				runResult.Stored = res.Run.Output
				runResult.Computed = res.Output
			}
			if res.Err != nil {
				runResult.Error = res.Err.Error()
			}
			sessResult.Runs = append(sessResult.Runs, runResult)
		}
		if !sessResult.Deterministic {
			diverged++
		}
		sessionResults = append(sessionResults, sessResult)
	}

	if opts.Format == "json" {
		if err := formatter.Success(sessionResults); err != nil {
			return err
		}
	} else {
		for _, sess := range sessionResults {
			status := "ok"
			if !sess.Deterministic {
				status = "DIVERGED"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %d runs  %s\n", sess.Session, len(sess.Runs), status)
			for _, run := range sess.Runs {
				if run.Match && run.Error == "" {
					continue
				}
				if run.Error != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s: %s\n", run.Seq, run.Algorithm, run.Error)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s: stored %q, computed %q\n", run.Seq, run.Algorithm, run.Stored, run.Computed)
			}
		}
	}

	if diverged > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d sessions diverged on replay", diverged, len(sessionResults)))
	}
	return nil
}
