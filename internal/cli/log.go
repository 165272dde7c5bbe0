package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		rev   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the revision history of the repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)
			formatter := output.NewFormatter()
			splog := output.NewSplog()

			if rev != "" {
				revision, err := repo.Revision(rev)
				if err != nil {
					return err
				}
				splog.Page(formatter.FormatRevision(revision))
				return nil
			}

			revisions, err := repo.Revisions("", "")
			if err != nil {
				return err
			}
			// Newest first, like hg log.
			for i := len(revisions) - 1; i >= 0; i-- {
				if limit > 0 && len(revisions)-1-i >= limit {
					break
				}
				splog.Page(formatter.FormatRevision(revisions[i]))
				splog.Info("")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rev, "rev", "r", "", "show the specified revision")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit number of revisions shown")

	return cmd
}
