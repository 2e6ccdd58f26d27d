package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// AlgorithmInfo is the JSON shape for one registry entry.
type AlgorithmInfo struct {
	Name           string `json:"name"`
	Family         string `json:"family"`
	KeyKind        string `json:"key_kind"`
	Description    string `json:"description"`
	SelfReciprocal bool   `json:"self_reciprocal,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered ciphers",
		Long: `List every registered cipher with its family, key kind, and
description.

Examples:
  cipherlab list
  cipherlab list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	algorithms := cipher.Algorithms()

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		infos := make([]AlgorithmInfo, 0, len(algorithms))
		for _, alg := range algorithms {
			infos = append(infos, AlgorithmInfo{
				Name:           alg.Name,
				Family:         string(alg.Family),
				KeyKind:        string(alg.KeyKind),
				Description:    alg.Description,
				SelfReciprocal: alg.SelfReciprocal,
			})
		}
		return formatter.Success(infos)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tKEY\tDESCRIPTION")
	for _, alg := range algorithms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", alg.Name, alg.Family, alg.KeyKind, alg.Description)
	}
	return w.Flush()
}
