package cmd

import (
	"fmt"
	"io"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of the current branch",
	Long: `Print every commit from the current commit back to the initial commit,
following first parents only.`,
	Args: exactArgs(0),
	RunE: runLog,
}

var globalLogCmd = &cobra.Command{
	Use:   "global-log",
	Short: "Show every commit ever made",
	Args:  exactArgs(0),
	RunE:  runGlobalLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(globalLogCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	commits, err := repo.Log()
	if err != nil {
		return err
	}
	return writeLog(cmd.OutOrStdout(), commits)
}

func runGlobalLog(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	commits, err := repo.GlobalLog()
	if err != nil {
		return err
	}
	return writeLog(cmd.OutOrStdout(), commits)
}

func writeLog(w io.Writer, commits []*objects.Commit) error {
	for _, commit := range commits {
		if err := writeLogEntry(w, commit); err != nil {
			return err
		}
	}
	return nil
}

// writeLogEntry renders one commit:
// ===
// commit <hash>
// Merge: <first parent[:7]> <second parent[:7]>   (merge commits only)
// Date: <timestamp>
// <message>
// <blank line>
func writeLogEntry(w io.Writer, commit *objects.Commit) error {
	if _, err := fmt.Fprintf(w, "===\ncommit %s\n", commit.Hash()); err != nil {
		return err
	}
	if commit.IsMergeCommit() {
		parents := commit.Parents()
		if _, err := fmt.Fprintf(w, "Merge: %s %s\n",
			parents[0][:constants.ShortHashLength],
			parents[1][:constants.ShortHashLength]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Date: %s\n%s\n\n", commit.Timestamp(), commit.Message())
	return err
}
