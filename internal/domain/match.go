package domain

import (
	"regexp"
	"strings"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// Single-line matchers. Declarations spanning multiple source lines are not
// recognized; that is a deliberate simplicity boundary of this tool. Commas
// nested inside parentheses within a parameter list are not handled either.
var (
	functionRe = regexp.MustCompile(`\bfunction\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(([^)]*)\)`)
	errorRe    = regexp.MustCompile(`\berror\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(([^)]*)\)\s*;`)
	requireRe  = regexp.MustCompile(`\brequire\s*\(\s*(.+?),\s*"([^"]*)"\s*\)\s*;`)
	publicVarRe = regexp.MustCompile(
		`([A-Za-z_$][A-Za-z0-9_$]*(?:\[\])?)\s+public\s+(?:constant\s+|immutable\s+)?([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*[^;]*;`)
)

// MatchLine classifies one line of source text as at most one declaration.
// Matcher priority is fixed: function, error, require, public variable. A
// line satisfying several rules yields only the highest-priority kind, which
// also resolves any boundary ambiguity from nested parentheses.
func MatchLine(line string) (m.Declaration, bool) {
	if mt := functionRe.FindStringSubmatch(line); mt != nil {
		return m.Declaration{
			Kind:      m.DeclFunction,
			Name:      mt[1],
			RawParams: splitParams(mt[2]),
		}, true
	}

	if mt := errorRe.FindStringSubmatch(line); mt != nil {
		return m.Declaration{
			Kind:      m.DeclError,
			Name:      mt[1],
			RawParams: splitParams(mt[2]),
		}, true
	}

	if mt := requireRe.FindStringSubmatch(line); mt != nil {
		return m.Declaration{
			Kind:      m.DeclRequire,
			Condition: strings.TrimSpace(mt[1]),
			Message:   mt[2],
		}, true
	}

	if strings.Contains(line, "public") {
		if mt := publicVarRe.FindStringSubmatch(line); mt != nil {
			return m.Declaration{
				Kind:    m.DeclGetter,
				Name:    mt[2],
				VarType: mt[1],
			}, true
		}
	}

	return m.Declaration{}, false
}

// splitParams splits a raw parameter list on commas. An empty or
// whitespace-only list yields nil so zero-argument signatures render as
// "name()".
func splitParams(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	params := make([]string, 0, len(parts))

	for _, part := range parts {
		params = append(params, strings.TrimSpace(part))
	}

	return params
}
