// Package dbconn defines the minimal backend-connection contract the core
// consumes (spec.md §6) plus real implementations for the four supported
// dialects. The contract itself has no dependency on package schema —
// schema.Database embeds a Connection purely as an opaque collaborator.
package dbconn

// Cursor is the result of executing a statement: column aliases (for
// record decoding, see package record) plus scalar row data.
type Cursor interface {
	// ColumnAliases returns the alias strings attached to each projected
	// item (spec.md §4.7), in projection order. Nil for statements that
	// return no rows.
	ColumnAliases() []string
	// NextRow advances to the next row, returning (nil, false) when
	// exhausted.
	NextRow() ([]any, bool)
	// LastInsertID returns the backend-assigned row id from the most
	// recent INSERT, when the dialect can't express RETURNING (MySQL).
	LastInsertID() (int64, bool)
	// Close releases cursor resources.
	Close() error
}

// Connection is the minimal backend abstraction the core builds against
// (spec.md §1, §6). Concrete dialect packages under dbconn/ implement it
// against real drivers; crossqltest provides an in-memory fake for unit
// tests.
type Connection interface {
	// Execute runs sql with named parameters (map[string]any) or
	// positional parameters ([]any), as shaped by the transpiler for this
	// connection's dialect, and returns a Cursor.
	Execute(sql string, params any) (Cursor, error)
	Commit() error
	Rollback() error
	Close() error
	// Autocommit reports whether this connection commits each Execute
	// immediately (spec.md §5).
	Autocommit() bool
}
