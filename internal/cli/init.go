package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new repository in the target directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)
			if err := repo.Init(); err != nil {
				return err
			}
			output.NewSplog().Info("initialized repository in %s", repo.Path())
			return nil
		},
	}
}
