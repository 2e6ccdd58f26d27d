package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Steps    bool
}

// SessionInfo is the JSON shape for a session listing.
type SessionInfo struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// RunInfo is the JSON shape for one recorded run.
type RunInfo struct {
	Seq       int64    `json:"seq"`
	Algorithm string   `json:"algorithm"`
	Mode      string   `json:"mode"`
	KeySpec   string   `json:"key,omitempty"`
	Input     string   `json:"input"`
	Output    string   `json:"output"`
	Steps     []string `json:"steps,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "Inspect recorded runs",
		Long: `List recorded sessions, or show the runs of one session.

Without arguments, lists every session in the database. With a
session ID, prints that session's runs in sequence order.

Examples:
  cipherlab history --db ./runs.db
  cipherlab history --db ./runs.db 0190a5e2-... --steps`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) == 1 {
				sessionID = args[0]
			}
			return runHistory(opts, sessionID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().BoolVar(&opts.Steps, "steps", false, "include each run's step trace")

	return cmd
}

func runHistory(opts *HistoryOptions, sessionID string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if sessionID == "" {
		return listSessions(ctx, st, formatter, cmd)
	}
	return showSession(ctx, st, opts, formatter, sessionID, cmd)
}

func listSessions(ctx context.Context, st *store.Store, formatter *OutputFormatter, cmd *cobra.Command) error {
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list sessions", err)
	}

	if formatter.Format == "json" {
		infos := make([]SessionInfo, 0, len(sessions))
		for _, sess := range sessions {
			infos = append(infos, SessionInfo{ID: sess.ID, CreatedAt: sess.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		return formatter.Success(infos)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded.")
		return nil
	}
	for _, sess := range sessions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sess.ID, sess.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func showSession(ctx context.Context, st *store.Store, opts *HistoryOptions, formatter *OutputFormatter, sessionID string, cmd *cobra.Command) error {
	runs, err := st.ReadSession(ctx, sessionID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read session", err)
	}
	if len(runs) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("session %s has no runs", sessionID))
	}

	if formatter.Format == "json" {
		infos := make([]RunInfo, 0, len(runs))
		for _, run := range runs {
			info := RunInfo{
				Seq:       run.Seq,
				Algorithm: run.Algorithm,
				Mode:      run.Mode,
				KeySpec:   run.KeySpec,
				Input:     run.Input,
				Output:    run.Output,
			}
			if opts.Steps {
				info.Steps = run.Trace
			}
			infos = append(infos, info)
		}
		return formatter.Success(infos)
	}

	for _, run := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s %s: %q -> %q\n", run.Seq, run.Algorithm, run.Mode, run.Input, run.Output)
		if opts.Steps {
			for _, line := range run.Trace {
				fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", line)
			}
		}
	}
	return nil
}
