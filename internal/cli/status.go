package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show changed files in the working directory",
		Aliases: []string{"st"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)

			changes, err := repo.Status(hg.StatusOptions{Sparse: true, All: all})
			if err != nil {
				return err
			}

			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatStatus(changes))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "A", false, "list clean files as well")

	return cmd
}
