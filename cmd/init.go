package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/repository"
	"github.com/KostasZigo/gogitlet/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new Gitlet repository",
	Long: `The 'init' command sets up a new Gitlet repository in the current directory.
It creates a .gitlet directory holding the initial commit and a master branch.
If a repository already exists, the command will not overwrite existing data.`,
	Args: maximumArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit executes repository initialization at specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty Gitlet repository in %s\n", utils.BuildDirPath(dirPath, constants.Gitlet))
	return nil
}
