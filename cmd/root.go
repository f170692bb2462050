// Package cmd provides the root command and CLI setup for solsig.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/adapter"
	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/controller"
	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/domain"
	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var hasher domain.Hasher
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read or
// write reports.
var reportsOutputDirFlag string

// excludePatterns filters scanned files for applicable commands.
var excludePatterns []string

// extensionFlag selects which file extension is scanned.
var extensionFlag string

// verboseFlag switches the file logger to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	hasher = domain.NewKeccakHasher()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, hasher)
}

const rootLongDescription = `Solsig extracts functions, custom errors, require guard messages and public
state-variable accessors from Solidity sources, computes their canonical
signatures and Keccak-256 selector digests, and renders the result as a
reproducible report for documentation, interface auditing and selector
collision detection.`

const scanLongDescription = `Scan the given paths (default: current directory) for Solidity sources,
extract all declarations and write the signature report to the output
directory.`

const listLongDescription = `List Solidity source files and the number of extractable declarations per
kind, without writing a report.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solsig",
		Short: "Solidity signature and selector extraction tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetBool(verboseFlagName))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for signature reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&extensionFlag, extFlagName, viper.GetString(extConfigKey), "file extension to scan")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), extConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
