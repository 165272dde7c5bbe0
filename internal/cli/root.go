// Package cli wires the hglib client library into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hglib",
		Short:   "hglib is a typed command line client for Mercurial repositories",
		Version: version,
		Long: `hglib is a typed command line client for Mercurial repositories.

It shells out to the hg binary and renders its output through the
hglib object model.`,
	}

	rootCmd.PersistentFlags().StringP("repository", "R", ".", "repository root directory")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newBookmarksCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newHeadsCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newIncomingCmd())
	rootCmd.AddCommand(newOutgoingCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// repoFromFlags builds a Repo bound to the directory named by the
// persistent --repository flag.
func repoFromFlags(cmd *cobra.Command) *hg.Repo {
	dir, _ := cmd.Flags().GetString("repository")
	return hg.NewRepo(dir)
}
