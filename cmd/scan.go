package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/domain"
	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

var scanParallelFlag int
var scanStrictFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Extract signatures and write the report",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := workflow.Scan(context.Background(), domain.ScanArgs{
				Paths:     parsePaths(args),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Extension: viper.GetString(extConfigKey),
				Output:    m.Path(viper.GetString(outputFlagName)),
				Threads:   viper.GetInt(scanParallelConfigKey),
				Strict:    viper.GetBool(strictConfigKey),
			})

			// A partial scan still produced the report; surface the skip
			// count without cobra re-printing usage.
			if errors.Is(err, domain.ErrPartialScan) {
				cmd.SilenceUsage = true
			}

			return err
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanParallelFlag, scanParallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of parallel extraction workers")
	bindFlagToConfig(cmd.Flags().Lookup(scanParallelFlagName), scanParallelConfigKey)

	cmd.Flags().BoolVar(&scanStrictFlag, strictFlagName, viper.GetBool(strictConfigKey), "skip declarations with unrecognized parameter types instead of emitting degraded signatures")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)
}
