package cli

import (
	"context"

	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/output"
)

// newOutgoingCmd creates the outgoing command
func newOutgoingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outgoing [remote]",
		Short: "List changesets not present in a remote repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoteChanges(cmd, args, (*hg.Repo).Outgoing, "no changes found")
		},
	}
}

// newIncomingCmd creates the incoming command
func newIncomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incoming [remote]",
		Short: "List changesets in a remote repository not present locally",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoteChanges(cmd, args, (*hg.Repo).Incoming, "no changes found")
		},
	}
}

type remoteQuery func(*hg.Repo, context.Context, string) ([]hg.Revision, error)

func runRemoteChanges(cmd *cobra.Command, args []string, query remoteQuery, emptyMessage string) error {
	repo := repoFromFlags(cmd)

	remote := "default"
	if len(args) > 0 {
		remote = args[0]
	}

	revs, err := query(repo, cmd.Context(), remote)
	if err != nil {
		return err
	}

	splog := output.NewSplog()
	if len(revs) == 0 {
		splog.Info("%s", emptyMessage)
		return nil
	}

	formatter := output.NewFormatter()
	for _, rev := range revs {
		splog.Page(formatter.FormatRevision(rev))
		splog.Info("")
	}
	return nil
}
