// Package domain contains the core extraction and signature logic.
package domain

import "strings"

// storageKeywords are Solidity data-location qualifiers. They carry no ABI
// meaning and are discarded during canonicalization.
var storageKeywords = map[string]bool{
	"calldata": true,
	"memory":   true,
	"storage":  true,
}

// CanonicalType normalizes a raw parameter fragment (the text between commas
// in a declaration's parameter list, e.g. " uint256[] calldata amounts") into
// a single ABI type token. The type is the first whitespace-separated word;
// data-location keywords and the parameter name are dropped. An array suffix
// written apart from the element type ("uint256 amounts[]") is folded back
// onto the type token.
//
// A fragment with no recognizable type yields "" rather than failing, so the
// signature builder can still emit a best-effort signature. Strict mode in
// the extractor turns that empty token into a skipped declaration instead.
func CanonicalType(fragment string) string {
	fields := strings.Fields(fragment)
	if len(fields) == 0 {
		return ""
	}

	typ := fields[0]
	if strings.HasSuffix(typ, "[]") {
		return typ
	}

	// Walk backwards past data-location keywords; if the last remaining
	// token (usually the parameter name) carries the array suffix, the
	// parameter is an array.
	for i := len(fields) - 1; i >= 1; i-- {
		if storageKeywords[fields[i]] {
			continue
		}

		if strings.HasSuffix(fields[i], "[]") {
			typ += "[]"
		}

		break
	}

	return typ
}

// CanonicalTypes maps CanonicalType over a list of raw parameter fragments,
// preserving declaration order.
func CanonicalTypes(fragments []string) []string {
	types := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		types = append(types, CanonicalType(fragment))
	}

	return types
}
