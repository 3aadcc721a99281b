package cmd

import (
	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Record the staged changes",
	Long: `Create a commit holding the current commit's files with every staged
addition and removal applied, then advance the current branch to it.`,
	Args: commitArgs,
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

// commitArgs reports a missing message distinctly from extra operands.
func commitArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return usageError(constants.MsgEmptyCommitMessage)
	case 1:
		return nil
	default:
		return usageError(constants.MsgIncorrectOperands)
	}
}

func runCommit(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	_, err = repo.Commit(args[0])
	return err
}
