package domain

import (
	"strings"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// CanonicalText builds the canonical signature string for a declaration.
//
//   - functions and errors: `name(t1,t2,...)` with each ti canonicalized; an
//     empty parameter list yields `name()`.
//   - public variables: `name(type)`. This is a reporting convention keyed by
//     the variable's type for disambiguation. It is NOT the on-chain getter
//     selector, which takes no arguments; the divergence is intentional and
//     documented rather than silently matched.
//   - requires: the literal message string, unmodified. This models hashing
//     an arbitrary diagnostic string, not a 4-byte ABI selector.
func CanonicalText(decl m.Declaration) string {
	switch decl.Kind {
	case m.DeclFunction, m.DeclError:
		return decl.Name + "(" + strings.Join(CanonicalTypes(decl.RawParams), ",") + ")"
	case m.DeclGetter:
		return decl.Name + "(" + decl.VarType + ")"
	case m.DeclRequire:
		return decl.Message
	}

	return ""
}

// Degraded reports whether a canonical signature contains an empty type slot,
// i.e. at least one parameter fragment failed to canonicalize. In best-effort
// mode such signatures are emitted as-is; strict mode drops the declaration.
func Degraded(decl m.Declaration) bool {
	if decl.Kind != m.DeclFunction && decl.Kind != m.DeclError {
		return false
	}

	for _, typ := range CanonicalTypes(decl.RawParams) {
		if typ == "" {
			return true
		}
	}

	return false
}

// BuildSignature combines the canonical text of a declaration with its
// selector digest from the provided hasher.
func BuildSignature(decl m.Declaration, hasher Hasher) m.Signature {
	text := CanonicalText(decl)

	return m.Signature{
		Canonical: text,
		Digest:    hasher.Selector(text),
	}
}
