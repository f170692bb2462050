// Package controller provides output adapters for displaying scan results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// UI is the interface the workflow uses to present results. Implementations
// can use different output methods (plain tables, interactive pager).
type UI interface {
	// DisplaySummary prints the post-scan summary: per-file record counts,
	// totals, collisions and skipped files.
	DisplaySummary(ctx context.Context, report m.ScanReport) error

	// DisplayCounts prints the per-file declaration counts for `list`.
	DisplayCounts(ctx context.Context, report m.ScanReport) error

	// DisplayReport shows the full signature listing for `view`.
	DisplayReport(ctx context.Context, report m.ScanReport) error
}

// NewUI selects the UI implementation. Interactive output gets the pager for
// long listings; non-TTY output always gets plain tables.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	return &consoleUI{cmd: cmd, interactive: interactive}
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
