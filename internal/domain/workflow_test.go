package domain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/adapter"
	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// fakeFS is an in-memory SourceFSAdapter. Reads can be forced to fail per
// path to exercise the isolated failure domain.
type fakeFS struct {
	files     map[string][]byte
	failReads map[string]error
	written   map[string][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:     map[string][]byte{},
		failReads: map[string]error{},
		written:   map[string][]byte{},
	}
}

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func (f *fakeFS) Walk(root m.Path, fn adapter.FilepathWalkFunc) error {
	paths := make([]string, 0, len(f.files))
	for path := range f.files {
		if strings.HasPrefix(path, string(root)+"/") {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)

	for _, path := range paths {
		if err := fn(path, fakeFileInfo{name: filepath.Base(path)}, nil); err != nil {
			return err
		}
	}

	return nil
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	if err, ok := f.failReads[string(path)]; ok {
		return nil, err
	}

	content, ok := f.files[string(path)]
	if !ok {
		return nil, fs.ErrNotExist
	}

	return content, nil
}

func (f *fakeFS) FileInfo(path m.Path) (os.FileInfo, error) {
	if _, ok := f.files[string(path)]; ok {
		return fakeFileInfo{name: filepath.Base(string(path))}, nil
	}

	for file := range f.files {
		if strings.HasPrefix(file, string(path)+"/") {
			return fakeFileInfo{name: filepath.Base(string(path)), dir: true}, nil
		}
	}

	return nil, fs.ErrNotExist
}

func (f *fakeFS) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	return m.Path(rel), err
}

func (f *fakeFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (f *fakeFS) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	f.written[string(path)] = content
	return nil
}

// memStore keeps reports in memory keyed by directory.
type memStore struct {
	saved map[string]m.ScanReport
}

func newMemStore() *memStore {
	return &memStore{saved: map[string]m.ScanReport{}}
}

func (s *memStore) Save(dir m.Path, report m.ScanReport) error {
	s.saved[string(dir)] = report
	return nil
}

func (s *memStore) Load(dir m.Path) (m.ScanReport, error) {
	report, ok := s.saved[string(dir)]
	if !ok {
		return m.ScanReport{}, fs.ErrNotExist
	}

	return report, nil
}

// fakeUI records which display calls the workflow made.
type fakeUI struct {
	summaries []m.ScanReport
	counts    []m.ScanReport
	reports   []m.ScanReport
}

func (u *fakeUI) DisplaySummary(_ context.Context, report m.ScanReport) error {
	u.summaries = append(u.summaries, report)
	return nil
}

func (u *fakeUI) DisplayCounts(_ context.Context, report m.ScanReport) error {
	u.counts = append(u.counts, report)
	return nil
}

func (u *fakeUI) DisplayReport(_ context.Context, report m.ScanReport) error {
	u.reports = append(u.reports, report)
	return nil
}

func newTestWorkflow() (*fakeFS, *memStore, *fakeUI, Workflow) {
	fs := newFakeFS()
	store := newMemStore()
	ui := &fakeUI{}

	return fs, store, ui, NewWorkflow(fs, store, ui, NewKeccakHasher())
}

func scanArgs(paths ...m.Path) ScanArgs {
	return ScanArgs{
		Paths:     paths,
		Extension: ".sol",
		Output:    "reports",
		Threads:   4,
	}
}

func TestWorkflowScan(t *testing.T) {
	fs, store, ui, w := newTestWorkflow()
	fs.files["contracts/Token.sol"] = []byte(tokenSource)
	fs.files["contracts/vault/Vault.sol"] = []byte("function deposit() public {}\n")
	fs.files["contracts/README.md"] = []byte("not solidity")

	err := w.Scan(context.Background(), scanArgs("contracts"))
	require.NoError(t, err)

	saved, ok := store.saved["reports"]
	require.True(t, ok)
	require.Len(t, saved.Files, 2)

	assert.Equal(t, m.Path("Token.sol"), saved.Files[0].Path)
	assert.Equal(t, m.Path("vault/Vault.sol"), saved.Files[1].Path)
	assert.Len(t, saved.Files[0].Functions, 2)
	assert.Empty(t, saved.Skipped)

	require.Len(t, ui.summaries, 1)
}

func TestWorkflowScan_IsolatedFileFailure(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	fs.files["contracts/Good.sol"] = []byte(tokenSource)
	fs.files["contracts/Bad.sol"] = []byte("unused")
	fs.failReads["contracts/Bad.sol"] = errors.New("permission denied")

	err := w.Scan(context.Background(), scanArgs("contracts"))

	// Partial success: report produced, error flags the skipped path.
	require.ErrorIs(t, err, ErrPartialScan)

	saved := store.saved["reports"]
	require.Len(t, saved.Files, 1)
	assert.Equal(t, m.Path("Good.sol"), saved.Files[0].Path)

	require.Len(t, saved.Skipped, 1)
	assert.Equal(t, m.Path("Bad.sol"), saved.Skipped[0].Path)
	assert.Contains(t, saved.Skipped[0].Reason, "permission denied")
}

func TestWorkflowScan_MissingRootIsSkipped(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	fs.files["contracts/Token.sol"] = []byte(tokenSource)

	err := w.Scan(context.Background(), scanArgs("contracts", "missing"))
	require.ErrorIs(t, err, ErrPartialScan)

	saved := store.saved["reports"]
	assert.Len(t, saved.Files, 1)
	require.Len(t, saved.Skipped, 1)
	assert.Equal(t, m.Path("missing"), saved.Skipped[0].Path)
}

func TestWorkflowScan_ExcludePatterns(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	fs.files["contracts/Token.sol"] = []byte(tokenSource)
	fs.files["contracts/mocks/MockToken.sol"] = []byte(tokenSource)

	args := scanArgs("contracts")
	args.Exclude = []string{`mocks/`}

	err := w.Scan(context.Background(), args)
	require.NoError(t, err)

	saved := store.saved["reports"]
	require.Len(t, saved.Files, 1)
	assert.Equal(t, m.Path("Token.sol"), saved.Files[0].Path)
}

func TestWorkflowScan_InvalidExcludePattern(t *testing.T) {
	_, _, _, w := newTestWorkflow()

	args := scanArgs("contracts")
	args.Exclude = []string{"("}

	err := w.Scan(context.Background(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestWorkflowScan_SingleFileRoot(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	fs.files["Token.sol"] = []byte(tokenSource)

	err := w.Scan(context.Background(), scanArgs("Token.sol"))
	require.NoError(t, err)

	saved := store.saved["reports"]
	require.Len(t, saved.Files, 1)
	assert.Equal(t, m.Path("Token.sol"), saved.Files[0].Path)
}

func TestWorkflowScan_Deterministic(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		fs.files["contracts/"+name+".sol"] = []byte(tokenSource)
	}

	require.NoError(t, w.Scan(context.Background(), scanArgs("contracts")))
	first := store.saved["reports"]

	require.NoError(t, w.Scan(context.Background(), scanArgs("contracts")))
	second := store.saved["reports"]

	// Identical input yields byte-identical record sequences regardless of
	// worker completion order.
	assert.Equal(t, first, second)
}

func TestWorkflowList_WritesNothing(t *testing.T) {
	fs, store, ui, w := newTestWorkflow()
	fs.files["contracts/Token.sol"] = []byte(tokenSource)

	err := w.List(context.Background(), ListArgs{
		Paths:     []m.Path{"contracts"},
		Extension: ".sol",
		Threads:   2,
	})
	require.NoError(t, err)

	assert.Empty(t, store.saved)
	require.Len(t, ui.counts, 1)
	assert.Len(t, ui.counts[0].Files, 1)
}

func TestWorkflowView(t *testing.T) {
	_, store, ui, w := newTestWorkflow()
	store.saved["reports"] = m.ScanReport{
		Files: []m.FileReport{{Path: "Token.sol"}},
	}

	err := w.View(context.Background(), ViewArgs{Reports: "reports"})
	require.NoError(t, err)

	require.Len(t, ui.reports, 1)
	assert.Equal(t, m.Path("Token.sol"), ui.reports[0].Files[0].Path)
}

func TestWorkflowView_MissingReport(t *testing.T) {
	_, _, _, w := newTestWorkflow()

	err := w.View(context.Background(), ViewArgs{Reports: "reports"})
	require.Error(t, err)
}

func TestWorkflowDiff(t *testing.T) {
	_, store, _, w := newTestWorkflow()
	store.saved["old"] = m.ScanReport{Files: []m.FileReport{{
		Path:      "Token.sol",
		Functions: []m.Record{record("transfer(address,uint256)", "0xa9059cbb")},
	}}}
	store.saved["new"] = m.ScanReport{Files: []m.FileReport{{
		Path:      "Token.sol",
		Functions: []m.Record{record("transfer(address,uint128)", "0x11111111")},
	}}}

	diff, err := w.Diff(context.Background(), DiffArgs{OldReports: "old", NewReports: "new"})
	require.NoError(t, err)

	assert.Contains(t, diff, "-Token.sol function 0xa9059cbb transfer(address,uint256)")
	assert.Contains(t, diff, "+Token.sol function 0x11111111 transfer(address,uint128)")
}

func TestWorkflowDiff_NoChanges(t *testing.T) {
	_, store, _, w := newTestWorkflow()
	report := m.ScanReport{Files: []m.FileReport{{
		Path:      "Token.sol",
		Functions: []m.Record{record("transfer(address,uint256)", "0xa9059cbb")},
	}}}
	store.saved["old"] = report
	store.saved["new"] = report

	diff, err := w.Diff(context.Background(), DiffArgs{OldReports: "old", NewReports: "new"})
	require.NoError(t, err)

	assert.Empty(t, diff)
}

func TestWorkflowScan_CollisionsReported(t *testing.T) {
	fs, store, _, w := newTestWorkflow()
	// Known 4-byte selector collision pair.
	fs.files["contracts/A.sol"] = []byte("function withdraw(uint256 amount) public {}\n")
	fs.files["contracts/B.sol"] = []byte("function OwnerTransferV7b711143(uint256 amount) public {}\n")

	err := w.Scan(context.Background(), scanArgs("contracts"))
	require.NoError(t, err)

	saved := store.saved["reports"]
	require.Len(t, saved.Collisions, 1)
	assert.ElementsMatch(t,
		[]string{"withdraw(uint256)", "OwnerTransferV7b711143(uint256)"},
		saved.Collisions[0].Canonicals)
}
