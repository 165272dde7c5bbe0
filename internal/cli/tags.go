package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newTagsCmd creates the tags command
func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the repository tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)

			tags, err := repo.Tags()
			if err != nil {
				return err
			}

			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatTags(tags))
			return nil
		},
	}
}
