package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/adapter"
	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/controller"
	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// ErrPartialScan marks a run that produced a report but skipped at least one
// unreadable path. Callers can distinguish it from a total failure: the
// report artifacts exist and cover every readable file.
var ErrPartialScan = errors.New("scan finished with skipped files")

// ScanArgs parameterizes a full extraction run.
type ScanArgs struct {
	Paths     []m.Path
	Exclude   []string
	Extension string
	Output    m.Path
	Threads   int
	Strict    bool
}

// ListArgs parameterizes a counting run (no report written).
type ListArgs struct {
	Paths     []m.Path
	Exclude   []string
	Extension string
	Threads   int
	Strict    bool
}

// ViewArgs parameterizes viewing a stored report.
type ViewArgs struct {
	Reports m.Path
}

// DiffArgs parameterizes comparing two stored reports.
type DiffArgs struct {
	OldReports m.Path
	NewReports m.Path
}

// Workflow wires the extraction core to the filesystem, the report store and
// the UI. Each method is one CLI operation.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) (string, error)
}

type workflow struct {
	fs     adapter.SourceFSAdapter
	store  adapter.ReportStore
	ui     controller.UI
	hasher Hasher
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI, hasher Hasher) Workflow {
	return &workflow{
		fs:     fs,
		store:  store,
		ui:     ui,
		hasher: hasher,
	}
}

// Scan extracts every matching file under the given roots, writes the report
// artifacts and prints the summary. Returns ErrPartialScan when some files
// were skipped but the report was still produced.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	report, err := w.extractAll(ctx, args.Paths, args.Exclude, args.Extension, args.Threads, args.Strict)
	if err != nil {
		return err
	}

	report.Collisions = FindCollisions(report.Files)

	if err := w.store.Save(args.Output, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if err := w.ui.DisplaySummary(ctx, report); err != nil {
		return err
	}

	if len(report.Skipped) > 0 {
		return fmt.Errorf("%w: %d path(s)", ErrPartialScan, len(report.Skipped))
	}

	return nil
}

// List runs extraction without persisting anything and shows per-file counts.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	report, err := w.extractAll(ctx, args.Paths, args.Exclude, args.Extension, args.Threads, args.Strict)
	if err != nil {
		return err
	}

	return w.ui.DisplayCounts(ctx, report)
}

// View loads the stored snapshot and displays the full listing.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.store.Load(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.ui.DisplayReport(ctx, report)
}

// Diff renders a unified diff of the canonical signature listings of two
// stored snapshots, for auditing interface changes between versions.
func (w *workflow) Diff(_ context.Context, args DiffArgs) (string, error) {
	oldReport, err := w.store.Load(args.OldReports)
	if err != nil {
		return "", fmt.Errorf("load old report: %w", err)
	}

	newReport, err := w.store.Load(args.NewReports)
	if err != nil {
		return "", fmt.Errorf("load new report: %w", err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        signatureLines(oldReport),
		B:        signatureLines(newReport),
		FromFile: string(args.OldReports),
		ToFile:   string(args.NewReports),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}

	return diff, nil
}

// extractAll walks the roots, runs per-file extraction on a bounded worker
// pool and returns the files sorted by path. A read failure on one file is
// recorded as a skip and never aborts the siblings.
func (w *workflow) extractAll(ctx context.Context, roots []m.Path, exclude []string, extension string, threads int, strict bool) (m.ScanReport, error) {
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	if threads <= 0 {
		threads = 1
	}

	excludeRes, err := compileExcludes(exclude)
	if err != nil {
		return m.ScanReport{}, err
	}

	var report m.ScanReport

	targets, skipped := w.collectTargets(roots, excludeRes, extension)
	report.Skipped = skipped

	extractor := NewExtractor(w.hasher, strict)

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, target := range targets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			content, err := w.fs.ReadFile(target.full)
			if err != nil {
				slog.Warn("skipping unreadable file", "path", target.full, "error", err)

				mu.Lock()
				report.Skipped = append(report.Skipped, m.SkippedFile{Path: target.short, Reason: err.Error()})
				mu.Unlock()

				return nil
			}

			fileReport := extractor.Extract(m.NewSourceUnit(target.full, target.short, content))

			mu.Lock()
			report.Files = append(report.Files, fileReport)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.ScanReport{}, err
	}

	// Completion order is nondeterministic; the report order must not be.
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	sort.Slice(report.Skipped, func(i, j int) bool {
		return report.Skipped[i].Path < report.Skipped[j].Path
	})

	return report, nil
}

// scanTarget pairs a file's absolute path with its report-relative path.
type scanTarget struct {
	full  m.Path
	short m.Path
}

// collectTargets discovers matching files under each root. Unwalkable paths
// become skip entries instead of failing the run.
func (w *workflow) collectTargets(roots []m.Path, excludeRes []*regexp.Regexp, extension string) ([]scanTarget, []m.SkippedFile) {
	var (
		targets []scanTarget
		skipped []m.SkippedFile
	)

	for _, root := range roots {
		info, err := w.fs.FileInfo(root)
		if err != nil {
			skipped = append(skipped, m.SkippedFile{Path: root, Reason: err.Error()})
			continue
		}

		if !info.IsDir() {
			targets = append(targets, scanTarget{full: root, short: root})
			continue
		}

		walkErr := w.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				skipped = append(skipped, m.SkippedFile{Path: m.Path(path), Reason: err.Error()})
				return nil
			}

			if info.IsDir() || !strings.HasSuffix(path, extension) {
				return nil
			}

			if matchesAny(excludeRes, path) {
				slog.Debug("excluded file", "path", path)
				return nil
			}

			short, err := w.fs.RelPath(root, m.Path(path))
			if err != nil {
				short = m.Path(path)
			}

			targets = append(targets, scanTarget{full: m.Path(path), short: short})

			return nil
		})
		if walkErr != nil {
			skipped = append(skipped, m.SkippedFile{Path: root, Reason: walkErr.Error()})
		}
	}

	return targets, skipped
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return res, nil
}

func matchesAny(res []*regexp.Regexp, path string) bool {
	for _, re := range res {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// signatureLines flattens a report into one line per record for diffing.
// Lines carry no line numbers so a declaration moving within a file does not
// show up as an interface change.
func signatureLines(report m.ScanReport) []string {
	var lines []string

	appendAll := func(path m.Path, kind string, records []m.Record) {
		for _, record := range records {
			lines = append(lines, fmt.Sprintf("%s %s %s %s\n",
				path, kind, record.Signature.Digest, record.Signature.Canonical))
		}
	}

	for _, file := range report.Files {
		appendAll(file.Path, "function", file.Functions)
		appendAll(file.Path, "error", file.Errors)
		appendAll(file.Path, "require", file.Requires)
		appendAll(file.Path, "getter", file.Getters)
	}

	return lines
}
