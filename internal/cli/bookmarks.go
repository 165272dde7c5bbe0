package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/output"
)

// newBookmarksCmd creates the bookmarks command
func newBookmarksCmd() *cobra.Command {
	var (
		create     string
		deleteName string
		rename     []string
		deactivate string
		revision   string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List or modify bookmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)
			opts := hg.BookmarkOptions{Revision: revision, Force: force}

			switch {
			case create != "":
				_, err := repo.CreateBookmark(create, opts)
				return err
			case deleteName != "":
				_, err := repo.DeleteBookmark(deleteName, opts)
				return err
			case len(rename) == 2:
				_, err := repo.RenameBookmark(rename[0], rename[1], opts)
				return err
			case deactivate != "":
				_, err := repo.DeactivateBookmark(deactivate, opts)
				return err
			}

			bookmarks, err := repo.Bookmarks()
			if err != nil {
				return err
			}
			formatter := output.NewFormatter()
			output.NewSplog().Page(formatter.FormatBookmarks(bookmarks))
			return nil
		},
	}

	cmd.Flags().StringVar(&create, "create", "", "create a bookmark")
	cmd.Flags().StringVar(&deleteName, "delete", "", "delete a bookmark")
	cmd.Flags().StringSliceVar(&rename, "rename", nil, "rename a bookmark (old,new)")
	cmd.Flags().StringVar(&deactivate, "deactivate", "", "make a bookmark inactive")
	cmd.Flags().StringVarP(&revision, "rev", "r", "", "revision for bookmark placement")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "force the operation")

	return cmd
}
