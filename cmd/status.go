package cmd

import (
	"fmt"
	"io"

	"github.com/KostasZigo/gogitlet/internal/repository"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show branches, staged files and working directory changes",
	Args:  exactArgs(0),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// currentBranchColor highlights the active branch when output is a terminal.
var currentBranchColor = color.New(color.FgGreen, color.Bold)

func runStatus(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	status, err := repo.Status()
	if err != nil {
		return err
	}

	writeStatus(cmd.OutOrStdout(), status)
	return nil
}

func writeStatus(w io.Writer, status *repository.Status) {
	fmt.Fprintln(w, "=== Branches ===")
	for _, branch := range status.Branches {
		if branch == status.CurrentBranch {
			fmt.Fprintln(w, currentBranchColor.Sprint("*"+branch))
		} else {
			fmt.Fprintln(w, branch)
		}
	}
	fmt.Fprintln(w)

	writeSection(w, "Staged Files", status.Staged)
	writeSection(w, "Removed Files", status.Removed)

	changes := make([]string, 0, len(status.Unstaged))
	for _, change := range status.Unstaged {
		changes = append(changes, fmt.Sprintf("%s (%s)", change.Name, change.Kind))
	}
	writeSection(w, "Modifications Not Staged For Commit", changes)

	writeSection(w, "Untracked Files", status.Untracked)
}

func writeSection(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
