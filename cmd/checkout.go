package cmd

import (
	"github.com/KostasZigo/gogitlet/internal/constants"
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout [-- <file> | <commit id> -- <file> | <branch>]",
	Short: "Restore a file or switch branches",
	Long: `Three forms:
  checkout -- <file>              restore file from the current commit
  checkout <commit id> -- <file>  restore file from the given commit (ids may be abbreviated)
  checkout <branch>               replace the working directory with the branch's files
                                  and make it the current branch`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runCheckout,
}

const fileSeparator = "--"

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

// runCheckout tells the three forms apart by where "--" sits. Flag parsing is
// disabled so the separator reaches args verbatim.
func runCheckout(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 2 && args[0] == fileSeparator:
		repo, err := openRepository()
		if err != nil {
			return err
		}
		return repo.CheckoutFile(args[1])

	case len(args) == 3 && args[1] == fileSeparator:
		repo, err := openRepository()
		if err != nil {
			return err
		}
		return repo.CheckoutFileFromCommit(args[0], args[2])

	case len(args) == 1 && args[0] != fileSeparator:
		repo, err := openRepository()
		if err != nil {
			return err
		}
		return repo.CheckoutBranch(args[0])

	default:
		return usageError(constants.MsgIncorrectOperands)
	}
}
