package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	// Output assertions compare plain text
	color.NoColor = true
}

// createTestRootCmd creates a fresh root command configured like rootCmd with the given subcommands.
func createTestRootCmd(cmds ...*cobra.Command) *cobra.Command {
	testRootCmd := &cobra.Command{
		Use:           "gitlet",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	testRootCmd.SetFlagErrorFunc(rootCmd.FlagErrorFunc())
	testRootCmd.AddCommand(cmds...)
	return testRootCmd
}

// allCommands lists every subcommand registered on rootCmd.
func allCommands() []*cobra.Command {
	return []*cobra.Command{
		initCmd, addCmd, rmCmd, commitCmd, logCmd, globalLogCmd, statusCmd, findCmd,
		checkoutCmd, branchCmd, rmBranchCmd, resetCmd, mergeCmd, hashObjectCmd,
	}
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// runGitlet executes args the way Execute does and returns what would reach stdout.
// Fails the test if the command would exit non-zero.
func runGitlet(t *testing.T, args ...string) string {
	t.Helper()

	stdout, stderr, code := executeGitlet(args...)
	if code != 0 {
		t.Fatalf("gitlet %s exited %d: %s", strings.Join(args, " "), code, stderr)
	}
	return stdout
}

// executeGitlet runs args on a fresh root and reports stdout, stderr and exit code.
func executeGitlet(args ...string) (string, string, int) {
	commands := allCommands()
	for _, command := range commands {
		resetFlags(command)
	}

	testRootCmd := createTestRootCmd(commands...)
	stdout := captureStdout(testRootCmd)
	stderr := captureStderr(testRootCmd)
	testRootCmd.SetArgs(args)

	code := reportError(stdout, stderr, testRootCmd.Execute())
	return stdout.String(), stderr.String(), code
}

// resetFlags restores every local flag of command to its default.
// Subcommands are package-level, so parsed values would otherwise leak between runs.
func resetFlags(command *cobra.Command) {
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

// setupInitializedRepo creates a temp dir, moves into it and runs init.
func setupInitializedRepo(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	changeToRepoDir(t, repoPath)
	runGitlet(t, "init")
	return repoPath
}
