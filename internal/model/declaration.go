package model

// DeclKind represents the category of extracted declaration.
type DeclKind string

const (
	// DeclFunction represents a `function name(params)` declaration.
	DeclFunction DeclKind = "function"
	// DeclError represents a custom `error Name(params);` declaration.
	DeclError DeclKind = "error"
	// DeclRequire represents a `require(cond, "msg");` guard statement.
	DeclRequire DeclKind = "require"
	// DeclGetter represents the implicit accessor synthesized for a
	// `public` state variable.
	DeclGetter DeclKind = "getter"
)

// Declaration is the classification of a single source line. Produced by the
// matcher, immutable once built. Which fields are populated depends on Kind:
//
//   - DeclFunction, DeclError: Name and RawParams
//   - DeclRequire: Condition and Message
//   - DeclGetter: Name and VarType
type Declaration struct {
	Kind DeclKind

	// Name is the function, error, or state-variable identifier.
	Name string
	// RawParams holds the unprocessed comma-separated parameter fragments
	// exactly as they appeared between the parentheses.
	RawParams []string

	// Condition is the guard expression of a require statement.
	Condition string
	// Message is the literal quoted string of a require statement, with no
	// escape processing.
	Message string

	// VarType is the declared type of a public state variable.
	VarType string
}
