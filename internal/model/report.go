package model

// Signature pairs a canonical signature string with its selector digest.
// Digest is a pure function of Canonical: identical text always yields the
// identical digest, with no network involvement.
type Signature struct {
	// Canonical is `name(type1,type2,...)` for functions, errors and
	// getters, or the literal guard message for requires.
	Canonical string `yaml:"canonical"`
	// Digest is "0x" followed by exactly 8 lowercase hex characters: the
	// first 4 bytes of Keccak-256 over Canonical.
	Digest string `yaml:"digest"`
}

// Record is one extracted declaration with its signature. Line is the
// 1-indexed source line of the match; getter records carry no line, matching
// the report convention that public-variable accessors are unordered.
type Record struct {
	Line        int         `yaml:"line,omitempty"`
	Declaration Declaration `yaml:"-"`
	Signature   Signature   `yaml:",inline"`
}

// FileReport groups the extraction records of one SourceUnit into four
// ordered lists. Order within each list matches line order of first
// appearance. A file with no matches still yields a valid empty FileReport.
type FileReport struct {
	Path      Path     `yaml:"path"`
	Functions []Record `yaml:"functions,omitempty"`
	Errors    []Record `yaml:"errors,omitempty"`
	Requires  []Record `yaml:"requires,omitempty"`
	Getters   []Record `yaml:"getters,omitempty"`
}

// Total returns the number of records across all four lists.
func (f FileReport) Total() int {
	return len(f.Functions) + len(f.Errors) + len(f.Requires) + len(f.Getters)
}

// Empty reports whether the file produced no records of any kind.
func (f FileReport) Empty() bool {
	return f.Total() == 0
}

// SkippedFile records a per-path I/O failure. Skips never abort sibling
// files; they are aggregated and flagged in the run summary.
type SkippedFile struct {
	Path   Path   `yaml:"path"`
	Reason string `yaml:"reason"`
}

// Collision is a selector digest shared by two or more distinct canonical
// signatures within one scan.
type Collision struct {
	Digest     string   `yaml:"digest"`
	Canonicals []string `yaml:"canonicals"`
}

// ScanReport is the full artifact of one scan run: per-file reports sorted
// by ShortPath, the skipped files, and any selector collisions.
type ScanReport struct {
	Files      []FileReport  `yaml:"files"`
	Skipped    []SkippedFile `yaml:"skipped,omitempty"`
	Collisions []Collision   `yaml:"collisions,omitempty"`
}

// TotalRecords returns the number of records across all files.
func (r ScanReport) TotalRecords() int {
	total := 0
	for _, f := range r.Files {
		total += f.Total()
	}

	return total
}
