package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	var revs []string

	cmd := &cobra.Command{
		Use:   "diff [files...]",
		Short: "Show differences between revisions or against the working directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := repoFromFlags(cmd)

			var revA, revB string
			if len(revs) > 0 {
				revA = revs[0]
			}
			if len(revs) > 1 {
				revB = revs[1]
			}

			diffs, err := repo.Diff(revA, revB, args...)
			if err != nil {
				return err
			}

			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatDiff(diffs))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&revs, "rev", "r", nil, "revision to diff (may be given twice)")

	return cmd
}
