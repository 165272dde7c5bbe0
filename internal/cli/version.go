package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/output"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hg-version",
		Short: "Show the version of the installed Mercurial binary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := hg.Version(cmd.Context())
			if err != nil {
				return err
			}
			output.NewSplog().Info("Mercurial %s", version)
			return nil
		},
	}
}
