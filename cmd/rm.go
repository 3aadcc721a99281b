package cmd

import "github.com/spf13/cobra"

var rmCmd = &cobra.Command{
	Use:   "rm <file>",
	Short: "Unstage a file or stage it for removal",
	Long: `Unstage a file staged for addition. If the current commit tracks the file,
stage it for removal and delete it from the working directory.`,
	Args: exactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	return repo.Remove(args[0])
}
