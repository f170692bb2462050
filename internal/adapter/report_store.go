package adapter

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

const (
	// MarkdownReportName is the rendered document written into the output dir.
	MarkdownReportName = "signatures.md"
	// SnapshotName is the machine-readable snapshot used by view and diff.
	SnapshotName = "report.yaml"

	reportPerm = 0o600
)

// ReportStore persists scan reports: a rendered markdown document for humans
// and a YAML snapshot that later runs load for viewing and diffing.
type ReportStore interface {
	Save(dir m.Path, report m.ScanReport) error
	Load(dir m.Path) (m.ScanReport, error)
}

type reportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore backed by the given filesystem.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// Save writes both report artifacts into dir.
func (s *reportStore) Save(dir m.Path, report m.ScanReport) error {
	snapshot, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report snapshot: %w", err)
	}

	snapshotPath := s.fs.JoinPath(string(dir), SnapshotName)
	if err := s.fs.WriteFile(snapshotPath, snapshot, reportPerm); err != nil {
		return fmt.Errorf("write %s: %w", snapshotPath, err)
	}

	markdownPath := s.fs.JoinPath(string(dir), MarkdownReportName)
	if err := s.fs.WriteFile(markdownPath, []byte(RenderMarkdown(report)), reportPerm); err != nil {
		return fmt.Errorf("write %s: %w", markdownPath, err)
	}

	slog.Debug("saved scan report", "dir", dir, "files", len(report.Files), "records", report.TotalRecords())

	return nil
}

// Load reads the YAML snapshot from dir.
func (s *reportStore) Load(dir m.Path) (m.ScanReport, error) {
	path := s.fs.JoinPath(string(dir), SnapshotName)

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return m.ScanReport{}, fmt.Errorf("read %s: %w", path, err)
	}

	var report m.ScanReport
	if err := yaml.Unmarshal(content, &report); err != nil {
		return m.ScanReport{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return report, nil
}

// RenderMarkdown renders a scan report as a markdown document. Every file
// gets a header section; files with no records get a header and no
// subsections. Subsection order is fixed: functions, errors, requires,
// getters.
func RenderMarkdown(report m.ScanReport) string {
	var b strings.Builder

	b.WriteString("# Solidity Signature Report\n")

	for _, file := range report.Files {
		fmt.Fprintf(&b, "\n## %s\n", file.Path)

		writeRecordSection(&b, "Functions", file.Functions, true)
		writeRecordSection(&b, "Errors", file.Errors, true)
		writeRecordSection(&b, "Requires", file.Requires, true)
		writeRecordSection(&b, "Getters", file.Getters, false)
	}

	if len(report.Collisions) > 0 {
		b.WriteString("\n## Selector collisions\n\n")

		for _, c := range report.Collisions {
			fmt.Fprintf(&b, "- `%s`: %s\n", c.Digest, strings.Join(quoteAll(c.Canonicals), ", "))
		}
	}

	if len(report.Skipped) > 0 {
		b.WriteString("\n## Skipped files\n\n")

		for _, skip := range report.Skipped {
			fmt.Fprintf(&b, "- `%s`: %s\n", skip.Path, skip.Reason)
		}
	}

	return b.String()
}

func writeRecordSection(b *strings.Builder, title string, records []m.Record, withLine bool) {
	if len(records) == 0 {
		return
	}

	fmt.Fprintf(b, "\n### %s\n\n", title)

	if withLine {
		b.WriteString("| Line | Signature | Digest |\n|---|---|---|\n")

		for _, record := range records {
			fmt.Fprintf(b, "| %d | `%s` | `%s` |\n", record.Line, record.Signature.Canonical, record.Signature.Digest)
		}

		return
	}

	b.WriteString("| Signature | Digest |\n|---|---|\n")

	for _, record := range records {
		fmt.Fprintf(b, "| `%s` | `%s` |\n", record.Signature.Canonical, record.Signature.Digest)
	}
}

func quoteAll(texts []string) []string {
	quoted := make([]string, 0, len(texts))
	for _, text := range texts {
		quoted = append(quoted, "`"+text+"`")
	}

	return quoted
}
