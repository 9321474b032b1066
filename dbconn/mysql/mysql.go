// Package mysql implements dbconn.Connection against go-sql-driver/mysql.
// Grounded on the teacher's database/mysql/database.go DSN/sql.Open
// pattern. MySQL has neither RETURNING nor OUTPUT (spec.md §4.6), so
// INSERT results surface through LastInsertID instead of a projected row.
package mysql

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"

	"github.com/crossql/crossql/dbconn"
)

// Connection wraps a *sql.DB opened against a MySQL server.
type Connection struct {
	db *sql.DB
	tx *sql.Tx
}

// Config is the subset of connection parameters crossql needs to build a
// MySQL DSN (spec.md §4.8's config.ConnectionConfig covers the rest).
type Config struct {
	User, Password, Host string
	Port                 int
	Database             string
}

func (c Config) dsn() string {
	cfg := driver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	cfg.DBName = c.Database
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Open opens a connection to a MySQL server per cfg.
func Open(cfg Config) (*Connection, error) {
	db, err := sql.Open("mysql", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("dbconn/mysql: open: %w", err)
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

	// An INSERT/UPDATE/DELETE (its RETURNING clause already stripped) runs
	// as Exec and surfaces LastInsertId instead of projected rows.
	if isWriteOnly(query) {
		var res sql.Result
		var err error
		if c.tx != nil {
			res, err = c.tx.Exec(query, args...)
		} else {
			res, err = c.db.Exec(query, args...)
		}
		if err != nil {
			return nil, fmt.Errorf("dbconn/mysql: execute: %w", err)
		}
		id, _ := res.LastInsertId()
		return &Cursor{lastInsertID: id, hasLastInsertID: true}, nil
	}

	var rows *sql.Rows
	var err error
	if c.tx != nil {
		rows, err = c.tx.Query(query, args...)
	} else {
		rows, err = c.db.Query(query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("dbconn/mysql: execute: %w", err)
	}
	return newCursor(rows)
}

// isWriteOnly reports whether query is an INSERT/UPDATE/DELETE with no
// RETURNING/OUTPUT clause left after transpile.rewriteReturning stripped
// it for MySQL — the only case this backend needs sql.Exec for.
func isWriteOnly(query string) bool {
	for _, verb := range []string{"INSERT INTO ", "UPDATE ", "DELETE FROM "} {
		if len(query) >= len(verb) && query[:len(verb)] == verb {
			return true
		}
	}
	return false
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

// Cursor adapts *sql.Rows (SELECT) or a bare LastInsertId (INSERT) to
// dbconn.Cursor.
type Cursor struct {
	rows            *sql.Rows
	aliases         []string
	lastInsertID    int64
	hasLastInsertID bool
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
	if c.rows == nil || !c.rows.Next() {
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

func (c *Cursor) LastInsertID() (int64, bool) { return c.lastInsertID, c.hasLastInsertID }

func (c *Cursor) Close() error {
	if c.rows == nil {
		return nil
	}
	return c.rows.Close()
}
