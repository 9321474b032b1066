// Package dialect holds the small set of SQL backends crossql knows how to
// target and the textual conventions (placeholder syntax, quoting) that vary
// between them. Everything else in the module treats a Dialect as opaque
// data, never as a type switch.
package dialect

import "fmt"

// Dialect identifies a target SQL backend. The canonical dialect that
// statement templates are rendered in is always SQLite; the others are
// transpile targets.
type Dialect string

const (
	SQLite     Dialect = "sqlite"
	SQLServer  Dialect = "tsql"
	PostgreSQL Dialect = "postgres"
	MySQL      Dialect = "mysql"
)

// Valid reports whether d is one of the four supported dialects.
func (d Dialect) Valid() bool {
	switch d {
	case SQLite, SQLServer, PostgreSQL, MySQL:
		return true
	}
	return false
}

func (d Dialect) String() string {
	return string(d)
}

// Parse converts a config-file or CLI string into a Dialect.
func Parse(s string) (Dialect, error) {
	d := Dialect(s)
	if !d.Valid() {
		return "", fmt.Errorf("crossql: unknown dialect %q", s)
	}
	return d, nil
}

// Placeholder describes how a dialect spells bound-parameter placeholders.
type Placeholder int

const (
	// PlaceholderNamed is SQLite's ":name" convention.
	PlaceholderNamed Placeholder = iota
	// PlaceholderQuestion is the bare "?" convention (SQL Server, MySQL).
	PlaceholderQuestion
	// PlaceholderDollar is PostgreSQL's "$n" convention.
	PlaceholderDollar
)

// PlaceholderStyle returns the placeholder convention for d.
func PlaceholderStyle(d Dialect) Placeholder {
	switch d {
	case SQLite:
		return PlaceholderNamed
	case PostgreSQL:
		return PlaceholderDollar
	case SQLServer, MySQL:
		return PlaceholderQuestion
	}
	return PlaceholderNamed
}

// SupportsReturning reports whether d understands a RETURNING clause
// directly (SQLite, PostgreSQL). SQL Server uses OUTPUT instead and MySQL
// has neither.
func SupportsReturning(d Dialect) bool {
	return d == SQLite || d == PostgreSQL
}

// SupportsOutput reports whether d uses SQL Server's OUTPUT clause.
func SupportsOutput(d Dialect) bool {
	return d == SQLServer
}

// QuoteIdentifier quotes a single identifier segment (no dots) the way d's
// engine expects it.
func QuoteIdentifier(d Dialect, name string) string {
	switch d {
	case MySQL:
		return "`" + name + "`"
	case SQLServer:
		return "[" + name + "]"
	default: // SQLite, PostgreSQL
		return `"` + name + `"`
	}
}
