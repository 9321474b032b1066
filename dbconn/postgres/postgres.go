// Package postgres implements dbconn.Connection against lib/pq, with an
// optional pre-flight validation pass via pganalyze/pg_query_go (spec.md
// §4.9 domain stack). Grounded on the teacher's database/postgres/database.go
// sql.Open pattern.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	pgquery "github.com/pganalyze/pg_query_go/v2"

	"github.com/crossql/crossql/dbconn"
)

// Connection wraps a *sql.DB opened against a PostgreSQL server.
type Connection struct {
	db *sql.DB
	tx *sql.Tx
}

// Open opens a connection using a libpq-style connection string (e.g.
// "host=... user=... dbname=... sslmode=disable").
func Open(connString string) (*Connection, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("dbconn/postgres: open: %w", err)
	}
	return &Connection{db: db}, nil
}

// ValidateSQL parses query with pg_query_go's bundled Postgres grammar and
// returns a descriptive error without ever sending the statement to a
// live server. Execute does not call it; callers invoke it explicitly.
func ValidateSQL(query string) error {
	_, err := pgquery.Parse(query)
	if err != nil {
		return fmt.Errorf("dbconn/postgres: invalid SQL: %w", err)
	}
	return nil
}

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
		return nil, fmt.Errorf("dbconn/postgres: execute: %w", err)
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

func (c *Connection) Autocommit() bool { return c.tx == nil }

// Cursor adapts *sql.Rows to dbconn.Cursor. PostgreSQL always honors
// RETURNING, so LastInsertID is never the fallback path here.
type Cursor struct {
	rows    *sql.Rows
	aliases []string
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

func (c *Cursor) LastInsertID() (int64, bool) { return 0, false }

func (c *Cursor) Close() error { return c.rows.Close() }
