// Package expr implements the composable SQL fragment algebra: Condition,
// Filter, AggregateFunction (Function) and Join. None of these types hold
// a hard dependency on package schema — they talk to columns and tables
// through the small Operand/ColumnOperand/TableRef interfaces below, which
// schema.Column and schema.Table satisfy structurally. This keeps the
// schema ↔ expr relationship one-directional (schema imports expr to build
// Filters/Joins; expr never imports schema), per the teacher's layering of
// schema/ast.go (data) vs parser/expr.go (fragments).
package expr

import "fmt"

// Kind enumerates expr-level build failures, per spec.md §7 (BuildError).
type Kind int

const (
	ValueCount Kind = iota
	WrongItemType
	SubSelectColumnCount
)

func (k Kind) String() string {
	switch k {
	case ValueCount:
		return "ValueCount"
	case WrongItemType:
		return "WrongItemType"
	case SubSelectColumnCount:
		return "SubSelectColumnCount"
	default:
		return "Unknown"
	}
}

// BuildError is expr's typed error.
type BuildError struct {
	Kind    Kind
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("expr: %s: %s", e.Kind, e.Message)
}

func newBuildError(kind Kind, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
