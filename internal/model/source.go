// Package model defines the data structures for signature extraction.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceUnit is a single Solidity source file loaded for extraction.
// Created once per input file, read only, discarded after the extraction
// pass; no SourceUnit is shared between files.
type SourceUnit struct {
	// FullPath is the path the file was read from.
	FullPath Path
	// ShortPath is the path relative to the scanned root. It is what the
	// report shows and what the final stable ordering sorts by.
	ShortPath Path
	// Lines holds the file content split into lines. Record line numbers
	// are 1-indexed into this slice.
	Lines []string
}

// NewSourceUnit builds a SourceUnit from raw file content.
func NewSourceUnit(fullPath, shortPath Path, content []byte) SourceUnit {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	return SourceUnit{
		FullPath:  fullPath,
		ShortPath: shortPath,
		Lines:     strings.Split(text, "\n"),
	}
}
