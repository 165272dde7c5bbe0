package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/output"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <source> <destination>",
		Short: "Clone a repository into a new directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := hg.Clone(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			output.NewSplog().Info("cloned into %s", repo.Path())
			return nil
		},
	}
}
