// Package sqlite3 implements dbconn.Connection against modernc.org/sqlite,
// the CGo-free driver the rest of the example pack's SQLite backends use.
// Grounded on the teacher's database/sqlite3/database.go (sql.Open +
// driver registration pattern).
package sqlite3

import (
	"database/sql"
	"fmt"

	"github.com/crossql/crossql/dbconn"
	_ "modernc.org/sqlite"
)

// Connection wraps a *sql.DB opened against a SQLite file (or ":memory:").
// SQLite autocommits every statement unless the caller opens a
// transaction explicitly with Begin.
type Connection struct {
	db *sql.DB
	tx *sql.Tx
}

// Open opens path (a file path or ":memory:") as a SQLite database.
func Open(path string) (*Connection, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dbconn/sqlite3: open %s: %w", path, err)
	}
	return &Connection{db: db}, nil
}

// Begin starts an explicit transaction; Execute runs against it until
// Commit or Rollback.
func (c *Connection) Begin() error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	c.tx = tx
	return nil
}

func (c *Connection) Execute(query string, params any) (dbconn.Cursor, error) {
	args := dbconn.Args(params)
	var rows *sql.Rows
	var err error
	if c.tx != nil {
		rows, err = c.tx.Query(query, args...)
	} else {
		rows, err = c.db.Query(query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("dbconn/sqlite3: execute: %w", err)
	}
	return newCursor(rows)
}

func (c *Connection) Commit() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

func (c *Connection) Rollback() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}

func (c *Connection) Close() error { return c.db.Close() }

// Autocommit is true whenever no explicit transaction is open.
func (c *Connection) Autocommit() bool { return c.tx == nil }

// Cursor adapts *sql.Rows to dbconn.Cursor. SQLite always honors
// RETURNING, so LastInsertID is never the fallback path here.
type Cursor struct {
	rows    *sql.Rows
	aliases []string
	current []any
}

func newCursor(rows *sql.Rows) (*Cursor, error) {
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &Cursor{rows: rows, aliases: cols}, nil
}

func (c *Cursor) ColumnAliases() []string { return c.aliases }

func (c *Cursor) NextRow() ([]any, bool) {
	if !c.rows.Next() {
		return nil, false
	}
	values := make([]any, len(c.aliases))
	ptrs := make([]any, len(c.aliases))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, false
	}
	return values, true
}

// LastInsertID is unused on SQLite: RETURNING already projects the
// primary key, so the driver's last-insert-rowid is never consulted.
func (c *Cursor) LastInsertID() (int64, bool) { return 0, false }

func (c *Cursor) Close() error { return c.rows.Close() }
