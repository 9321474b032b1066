// Package transpile rewrites the canonical (SQLite-dialect) SQL a
// statement builder produces into dialect-correct SQL text plus its
// placeholder parameters, per spec.md §4.6. It never re-derives grammar:
// the input is always one of package statement's own templates, so
// rewriting is a bounded token scan, not a general SQL parse.
package transpile

import "fmt"

// Kind enumerates transpile-time failures (spec.md §7: TranspileError).
type Kind int

const (
	UnsupportedDialect Kind = iota
	MalformedTemplate
)

// Error is the transpile subsystem's typed error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("transpile: %s", e.Message) }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
