package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <branch>",
	Short: "Merge a branch into the current branch",
	Long: `Three-way merge the given branch into the current branch using their split point.
Conflicting files are written with both versions between conflict markers and
committed as part of the merge.`,
	Args: exactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

var conflictColor = color.New(color.FgRed)

func runMerge(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	result, err := repo.Merge(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.FastForward:
		fmt.Fprintln(out, constants.MsgFastForwarded)
	case result.HasConflicts():
		fmt.Fprintln(out, conflictColor.Sprint(constants.MsgMergeConflict))
	}
	return nil
}
