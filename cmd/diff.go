package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/domain"
	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old-reports-dir> <new-reports-dir>",
		Short: "Diff the signatures of two stored reports",
		Long: `Compare the canonical signature listings of two report snapshots and print
a unified diff. Useful for auditing interface changes between contract
versions: added, removed or re-typed functions show up as diff lines.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := workflow.Diff(context.Background(), domain.DiffArgs{
				OldReports: m.Path(args[0]),
				NewReports: m.Path(args[1]),
			})
			if err != nil {
				return err
			}

			if diff == "" {
				cmd.Println("No signature changes.")
				return nil
			}

			cmd.Print(diff)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
