package transpile

import (
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/statement"
)

// Result is a statement's SQL rendered for one specific dialect, plus its
// parameters in whatever shape that dialect's driver expects (spec.md
// §4.6). Exactly one of Named/Positional is populated, matching
// dialect.PlaceholderStyle(Dialect).
type Result struct {
	Dialect    dialect.Dialect
	SQL        string
	Named      map[string]any
	Positional []any
}

// Transpile renders st for d, in these steps (spec.md §4.6):
//  1. take st's canonical (SQLite-dialect) template and parameter map;
//  2. rewrite the trailing RETURNING clause for d;
//  3. tokenize the result (cached across calls, see parse.go);
//  4. reshape placeholders into d's native convention.
//
// No other dialect-specific DDL/DML rewriting is done: the builders
// already emit dialect-neutral grammar aside from RETURNING.
func Transpile(st statement.Statement, d dialect.Dialect) (*Result, error) {
	if !d.Valid() {
		return nil, newError(UnsupportedDialect, "unknown dialect %q", d)
	}

	sql, err := st.TemplateSQL()
	if err != nil {
		return nil, err
	}
	params := st.TemplateParams()

	sql = rewriteReturning(sql, d)
	toks := tokensFor(sql)

	renderedSQL, positional, named, err := renderPlaceholders(toks, dialect.PlaceholderStyle(d), params)
	if err != nil {
		return nil, err
	}

	return &Result{
		Dialect:    d,
		SQL:        renderedSQL,
		Named:      named,
		Positional: positional,
	}, nil
}
