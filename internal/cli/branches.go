package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List the repository branches with their versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)

			branches, err := repo.Branches()
			if err != nil {
				return err
			}

			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatBranches(branches))
			return nil
		},
	}
}
