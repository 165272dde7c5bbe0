package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newPathsCmd creates the paths command
func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the configured remote repositories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)

			paths, err := repo.Paths()
			if err != nil {
				return err
			}

			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatPaths(paths))
			return nil
		},
	}
}
