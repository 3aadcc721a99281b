package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/KostasZigo/gogitlet/internal/objects"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute object hash and optionally store a blob from a file",
	Long: `Compute the object hash (SHA-1 hash) a file would be tracked under.
Optionally write the resulting blob into the object store.

Examples:
  # Compute hash without storing
  gitlet hash-object myfile.txt

  # Compute hash and store in .gitlet/objects
  gitlet hash-object -w myfile.txt`,
	Args: exactArgs(1),
	RunE: runHashObject,
}

const writeFlagName = "write"

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	// Add flag using Cobra's flag system
	hashObjectCmd.Flags().BoolP(writeFlagName, "w", false, "Write the object into the object store")
}

// runHashObject computes hash and optionally stores blob object.
func runHashObject(cmd *cobra.Command, args []string) error {
	blob, err := objects.NewBlobFromFile(args[0])
	if errors.Is(err, fs.ErrNotExist) {
		return preconditionError(constants.MsgFileDoesNotExist)
	}
	if err != nil {
		return err
	}

	write, err := cmd.Flags().GetBool(writeFlagName)
	if err != nil {
		return err
	}

	if write {
		repo, err := openRepository()
		if err != nil {
			return err
		}
		if err := repo.WriteBlob(blob); err != nil {
			return fmt.Errorf("failed to store object: %w", err)
		}
	}

	// Print hash to stdout
	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())
	return nil
}
