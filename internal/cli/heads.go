package cli

import (
	"github.com/spf13/cobra"

	"hglib.dev/hglib/internal/output"
)

// newHeadsCmd creates the heads command
func newHeadsCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "heads",
		Short: "List the node identifiers of all open heads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := repoFromFlags(cmd)

			heads, err := repo.Heads(short)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			for _, head := range heads {
				splog.Info("%s", head)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "show short node hashes")

	return cmd
}
