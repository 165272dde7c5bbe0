package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"hglib.dev/hglib/hg"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message     string
		user        string
		date        string
		closeBranch bool
	)

	cmd := &cobra.Command{
		Use:     "commit [files...]",
		Short:   "Commit the working directory changes",
		Aliases: []string{"ci"},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := repoFromFlags(cmd)

			if message == "" {
				prompt := &survey.Input{Message: "Commit message"}
				if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
					return fmt.Errorf("canceled")
				}
			}

			return repo.Commit(message, hg.CommitOptions{
				User:        user,
				Date:        date,
				CloseBranch: closeBranch,
				Files:       args,
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringVarP(&user, "user", "u", "", "record the specified user as committer")
	cmd.Flags().StringVarP(&date, "date", "d", "", "record the specified date as commit date")
	cmd.Flags().BoolVar(&closeBranch, "close-branch", false, "mark the branch as closed")

	return cmd
}
