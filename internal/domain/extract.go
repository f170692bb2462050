package domain

import (
	"log/slog"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// Extractor runs the line matcher over a SourceUnit and produces its
// FileReport. It holds no per-file state; one Extractor can serve concurrent
// files as long as its Hasher is safe for concurrent use.
type Extractor struct {
	hasher Hasher
	// strict drops declarations whose canonicalization produced an empty
	// type slot instead of emitting a degraded signature.
	strict bool
}

// NewExtractor constructs an Extractor around the given hash capability.
func NewExtractor(hasher Hasher, strict bool) *Extractor {
	return &Extractor{hasher: hasher, strict: strict}
}

// Extract iterates lines in order, 1-indexed, matching each line and
// appending the resulting record to the list of its kind. No cross-line
// state is retained. A file with zero matches returns a valid empty report.
func (e *Extractor) Extract(src m.SourceUnit) m.FileReport {
	report := m.FileReport{Path: src.ShortPath}

	for i, line := range src.Lines {
		decl, ok := MatchLine(line)
		if !ok {
			continue
		}

		lineNo := i + 1

		if e.strict && Degraded(decl) {
			slog.Warn("skipping declaration with unrecognized parameter type",
				"path", src.ShortPath, "line", lineNo, "name", decl.Name)
			continue
		}

		record := m.Record{
			Line:        lineNo,
			Declaration: decl,
			Signature:   BuildSignature(decl, e.hasher),
		}

		switch decl.Kind {
		case m.DeclFunction:
			report.Functions = append(report.Functions, record)
		case m.DeclError:
			report.Errors = append(report.Errors, record)
		case m.DeclRequire:
			report.Requires = append(report.Requires, record)
		case m.DeclGetter:
			// Getter records carry no line in the report output.
			record.Line = 0
			report.Getters = append(report.Getters, record)
		}
	}

	return report
}
