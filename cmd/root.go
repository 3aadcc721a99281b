package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/repository"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the gitlet CLI.
// All subcommands (init, add, commit, etc.) register under this root.
// Arbitrary args are accepted so a missing or unknown command reaches runRoot
// and is reported like any other user error.
var rootCmd = &cobra.Command{
	Use:   "gitlet",
	Short: "A small local version-control system",
	Long: `Gitlet tracks snapshots of the files in a directory. It supports staging,
commits, branches, checkout, reset and three-way merge, all stored locally under .gitlet.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return usageError(constants.MsgIncorrectOperands)
	})
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError(constants.MsgNoCommand)
	}
	return usageError(constants.MsgUnknownCommand)
}

// Execute runs the root command.
// User errors print one line to stdout and exit 0. Anything else goes to stderr with exit code 1.
func Execute() {
	err := rootCmd.Execute()
	if code := reportError(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), err); code != 0 {
		os.Exit(code)
	}
}

// reportError writes err where it belongs and returns the process exit code.
func reportError(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if userErr, ok := repository.AsError(err); ok {
		fmt.Fprintln(stdout, userErr.Message)
		return 0
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func usageError(message string) error {
	return &repository.Error{Kind: repository.KindUsage, Message: message}
}

func preconditionError(message string) error {
	return &repository.Error{Kind: repository.KindPrecondition, Message: message}
}

// exactArgs validates command receives exactly n positional arguments.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError(constants.MsgIncorrectOperands)
		}
		return nil
	}
}

// maximumArgs validates command receives at most n positional arguments.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return usageError(constants.MsgIncorrectOperands)
		}
		return nil
	}
}

// openRepository opens the repository in the working directory and applies
// its output settings.
func openRepository() (*repository.Repository, error) {
	repo, err := repository.Open(".")
	if err != nil {
		return nil, err
	}

	if enabled, set := repo.Config().ColorEnabled(); set {
		color.NoColor = !enabled
	}
	return repo, nil
}
