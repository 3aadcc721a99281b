package cmd

import "github.com/spf13/cobra"

var resetCmd = &cobra.Command{
	Use:   "reset <commit id>",
	Short: "Check out a commit and move the current branch to it",
	Long: `Restore every file tracked by the given commit, remove tracked files it does not
contain, clear the staging area and point the current branch at the commit.`,
	Args: exactArgs(1),
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	return repo.Reset(args[0])
}
