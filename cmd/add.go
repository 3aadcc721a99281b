package cmd

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Stage a file for the next commit",
	Long: `Stage the current contents of a file for addition. Staging a file whose
contents match the current commit unstages it instead.`,
	Args: exactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	return repo.Add(args[0])
}
