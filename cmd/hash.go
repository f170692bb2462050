package cmd

import (
	"github.com/spf13/cobra"
)

// hashCmd represents the hash command.
var hashCmd = newHashCmd()

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <signature>...",
		Short: "Print the selector digest of signature strings",
		Long: `Compute the 4-byte Keccak-256 selector digest for canonical signature
strings given on the command line, e.g.

  solsig hash "transfer(address,uint256)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, text := range args {
				cmd.Printf("%s  %s\n", hasher.Selector(text), text)
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
