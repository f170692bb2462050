package controller

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// consoleUI implements UI on top of a cobra command's output streams.
type consoleUI struct {
	cmd         *cobra.Command
	interactive bool
}

// DisplaySummary prints the per-file totals table plus collision and skip
// notes after a scan.
func (u *consoleUI) DisplaySummary(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.printf("\n%s", renderCountTable(report, false))

	for _, c := range report.Collisions {
		u.printf("collision %s: %s\n", c.Digest, strings.Join(c.Canonicals, " <-> "))
	}

	for _, skip := range report.Skipped {
		u.printf("skipped %s: %s\n", skip.Path, skip.Reason)
	}

	return nil
}

// DisplayCounts prints the per-kind counts table for the list command.
func (u *consoleUI) DisplayCounts(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.printf("\n%s", renderCountTable(report, true))

	return nil
}

// DisplayReport shows the full signature listing. When attached to a
// terminal and the listing overflows the window, an interactive pager takes
// over; otherwise the listing is printed directly.
func (u *consoleUI) DisplayReport(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := reportLines(report)

	if u.interactive {
		if f, ok := u.cmd.OutOrStdout().(*os.File); ok {
			if err := runPager(f, lines); err == nil {
				return nil
			}
			// Pager failure falls back to plain output.
		}
	}

	u.printf("%s\n", strings.Join(lines, "\n"))

	return nil
}

func (u *consoleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(u.cmd.OutOrStdout(), format, args...)
}

// renderCountTable renders per-file record counts. The detailed variant
// breaks counts down by declaration kind; the summary variant shows totals
// only. Files arrive pre-sorted by path, so the table is deterministic.
func renderCountTable(report m.ScanReport, detailed bool) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	if detailed {
		table.SetHeader([]string{"Path", "Functions", "Errors", "Requires", "Getters"})
	} else {
		table.SetHeader([]string{"Path", "Records"})
	}

	total := 0

	for _, file := range report.Files {
		if detailed {
			table.Append([]string{
				string(file.Path),
				strconv.Itoa(len(file.Functions)),
				strconv.Itoa(len(file.Errors)),
				strconv.Itoa(len(file.Requires)),
				strconv.Itoa(len(file.Getters)),
			})
		} else {
			table.Append([]string{string(file.Path), strconv.Itoa(file.Total())})
		}

		total += file.Total()
	}

	if detailed {
		table.SetFooter([]string{
			fmt.Sprintf("Total Files %d", len(report.Files)),
			"", "", "",
			strconv.Itoa(total),
		})
	} else {
		table.SetFooter([]string{
			fmt.Sprintf("Total Files %d", len(report.Files)),
			strconv.Itoa(total),
		})
	}

	table.Render()

	return buffer.String()
}

// reportLines flattens a scan report into display lines for the pager and
// the plain fallback.
func reportLines(report m.ScanReport) []string {
	var lines []string

	appendSection := func(title string, records []m.Record, withLine bool) {
		if len(records) == 0 {
			return
		}

		lines = append(lines, "  "+title+":")

		for _, record := range records {
			if withLine {
				lines = append(lines, fmt.Sprintf("    L%-5d %s  %s",
					record.Line, record.Signature.Digest, record.Signature.Canonical))
			} else {
				lines = append(lines, fmt.Sprintf("    %s  %s",
					record.Signature.Digest, record.Signature.Canonical))
			}
		}
	}

	for _, file := range report.Files {
		lines = append(lines, string(file.Path))
		appendSection("functions", file.Functions, true)
		appendSection("errors", file.Errors, true)
		appendSection("requires", file.Requires, true)
		appendSection("getters", file.Getters, false)
	}

	for _, skip := range report.Skipped {
		lines = append(lines, fmt.Sprintf("skipped: %s (%s)", skip.Path, skip.Reason))
	}

	return lines
}
