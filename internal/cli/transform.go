package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/cipher"
	"github.com/cipherworks/cipherlab/internal/store"
)

// TransformOptions holds flags for the encrypt and decrypt commands.
type TransformOptions struct {
	*RootOptions
	Cipher   string
	Key      string
	Text     string
	Steps    bool
	Database string
	Session  string
}

// TransformData is the success payload for a transform.
type TransformData struct {
	Cipher  string   `json:"cipher"`
	Mode    string   `json:"mode"`
	Input   string   `json:"input"`
	Output  string   `json:"output"`
	Steps   []string `json:"steps,omitempty"`
	Session string   `json:"session,omitempty"`
}

// NewTransformCommand creates the encrypt or decrypt command. Both
// share flags and flow; only the mode differs.
func NewTransformCommand(rootOpts *RootOptions, direction string) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   direction + " --cipher <name> --text <text>",
		Short: fmt.Sprintf("%s text with a classical cipher", titleCase(direction)),
		Long: fmt.Sprintf(`%s text with one of the registered classical ciphers.

The key format depends on the cipher; see 'cipherlab list' for each
cipher's key kind. Use --steps to print the per-character trace.
With --db, the run is appended to a recorded session for later
'cipherlab history' and 'cipherlab replay'.

Examples:
  cipherlab %s --cipher caesar --key 3 --text "Hello"
  cipherlab %s --cipher vigenere --key LEMON --text ATTACKATDAWN --steps
  cipherlab %s --cipher hill --key 3,3,2,5 --text HELP --db ./runs.db`,
			titleCase(direction), direction, direction, direction),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, direction, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Cipher, "cipher", "c", "", "cipher name (required)")
	_ = cmd.MarkFlagRequired("cipher")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "key spec (format depends on cipher)")
	cmd.Flags().StringVarP(&opts.Text, "text", "t", "", "text to transform (required)")
	_ = cmd.MarkFlagRequired("text")
	cmd.Flags().BoolVar(&opts.Steps, "steps", false, "print the step-by-step trace")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run to this SQLite history database")
	cmd.Flags().StringVar(&opts.Session, "session", "", "append to an existing session instead of starting one")

	return cmd
}

func runTransform(opts *TransformOptions, direction string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mode, err := cipher.ParseMode(direction)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid mode", err)
	}

	alg, ok := cipher.Lookup(opts.Cipher)
	if !ok {
		_ = formatter.Error("UNKNOWN_CIPHER", fmt.Sprintf("unknown cipher %q", opts.Cipher), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown cipher %q", opts.Cipher))
	}

	key, err := alg.ParseKey(opts.Key)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid key", err)
	}

	var trace cipher.Trace
	output, err := alg.Run(opts.Text, key, mode, &trace)
	if err != nil {
		_ = formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "transform failed", err)
	}

	data := TransformData{
		Cipher: alg.Name,
		Mode:   mode.String(),
		Input:  opts.Text,
		Output: output,
	}
	if opts.Steps {
		data.Steps = trace
	}

	if opts.Database != "" {
		sessionID, err := recordRun(cmd.Context(), opts, alg.Name, mode, output, trace)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to record run", err)
		}
		data.Session = sessionID
		formatter.VerboseLog("recorded run in session %s", sessionID)
	}

	if opts.Format == "json" {
		return formatter.Success(data)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	if opts.Steps {
		for _, line := range trace {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
		}
	}
	if data.Session != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", data.Session)
	}
	return nil
}

// recordRun appends the transform to the history database, starting a
// fresh session unless one was named.
func recordRun(ctx context.Context, opts *TransformOptions, algorithm string, mode cipher.Mode, output string, trace []string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return "", err
	}
	defer st.Close()

	sessionID := opts.Session
	if sessionID == "" {
		sess, err := st.BeginSession(ctx)
		if err != nil {
			return "", err
		}
		sessionID = sess.ID
	}

	run := &store.Run{
		SessionID: sessionID,
		Seq:       st.Clock().Next(),
		Algorithm: algorithm,
		Mode:      mode.String(),
		KeySpec:   opts.Key,
		Input:     opts.Text,
		Output:    output,
		Trace:     trace,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return "", err
	}
	return sessionID, nil
}

// titleCase uppercases the first byte; command names are ASCII.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
