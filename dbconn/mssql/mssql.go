// Package mssql implements dbconn.Connection against microsoft/go-mssqldb.
// Grounded on the teacher's database/mssql/database.go sql.Open pattern.
package mssql

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/crossql/crossql/dbconn"
)

// Config is the subset of connection parameters needed to build a
// SQL Server DSN.
type Config struct {
	User, Password, Host, Database string
	Port                           int
}

func (c Config) dsn() string {
	u := &url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
	}
	q := u.Query()
	q.Set("database", c.Database)
	u.RawQuery = q.Encode()
	return u.String()
}

// Connection wraps a *sql.DB opened against a SQL Server instance.
type Connection struct {
	db *sql.DB
	tx *sql.Tx
}

// Open opens a connection to a SQL Server instance per cfg.
func Open(cfg Config) (*Connection, error) {
	db, err := sql.Open("sqlserver", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("dbconn/mssql: open: %w", err)
	}
	return &Connection{db: db}, nil
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
		return nil, fmt.Errorf("dbconn/mssql: execute: %w", err)
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

// Cursor adapts *sql.Rows to dbconn.Cursor. SQL Server honors OUTPUT, so
// LastInsertID is never the fallback path here.
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
