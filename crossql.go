// Package crossql is the orchestration layer spec.md §3 describes as
// "Table... convenience CRUD methods delegating to the database": since
// package schema cannot import package statement (statement already
// imports schema — a cycle), that delegation lives here instead, one
// level above both. DB wraps a bound schema.Database and wires together
// statement building, transpilation, and execution against its
// Connection.
package crossql

import (
	"fmt"

	"github.com/crossql/crossql/dbconn"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/statement"
	"github.com/crossql/crossql/transpile"
)

// DB wraps a bound schema.Database with the CRUD operations spec.md §3
// assigns to Table/Database: insert, select, update, delete, each
// rendering through package statement, transpiling for the database's own
// dialect, executing against its Connection, and decoding rows back into
// Records.
type DB struct {
	*schema.Database
}

// Open wraps an already-bound Database (see schema.NewDatabase) for CRUD
// use. db.Connection must be set before any operation runs.
func Open(db *schema.Database) *DB { return &DB{Database: db} }

func (db *DB) dialect() (dialect.Dialect, error) { return dialect.Parse(db.Dialect) }

func paramsFor(result *transpile.Result) any {
	if result.Named != nil {
		return result.Named
	}
	return result.Positional
}

// InsertRecords inserts each rec into table, returning the decoded
// RETURNING row for each insert. Per spec.md §8 scenario 5, a dialect
// with no RETURNING/OUTPUT (MySQL) yields an empty, never nil, slice.
func (db *DB) InsertRecords(table *schema.Table, records ...*record.Record) ([]*record.Record, error) {
	d, err := db.dialect()
	if err != nil {
		return nil, err
	}

	out := []*record.Record{}
	for _, rec := range records {
		st, err := statement.NewInsertInto(table, rec)
		if err != nil {
			return nil, err
		}
		result, err := transpile.Transpile(st, d)
		if err != nil {
			return nil, err
		}
		cursor, err := db.Connection.Execute(result.SQL, paramsFor(result))
		if err != nil {
			return nil, fmt.Errorf("crossql: insert into %s: %w", table.Name, err)
		}
		decoded, err := decodeCursor(db.Database, cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
	}
	if db.Connection.Autocommit() {
		return out, nil
	}
	return out, db.Connection.Commit()
}

// SelectRecords runs a SELECT per spec, decoding every returned row.
func (db *DB) SelectRecords(spec statement.SelectSpec) ([]*record.Record, error) {
	d, err := db.dialect()
	if err != nil {
		return nil, err
	}
	st, err := statement.NewSelect(spec)
	if err != nil {
		return nil, err
	}
	result, err := transpile.Transpile(st, d)
	if err != nil {
		return nil, err
	}
	cursor, err := db.Connection.Execute(result.SQL, paramsFor(result))
	if err != nil {
		return nil, fmt.Errorf("crossql: select from %s: %w", spec.Table.Name, err)
	}
	return decodeCursor(db.Database, cursor)
}

// UpdateRecords updates every row matching where with rec's columns,
// returning the decoded RETURNING rows.
func (db *DB) UpdateRecords(table *schema.Table, rec *record.Record, where *expr.Condition) ([]*record.Record, error) {
	d, err := db.dialect()
	if err != nil {
		return nil, err
	}
	st, err := statement.NewUpdate(table, rec, where)
	if err != nil {
		return nil, err
	}
	result, err := transpile.Transpile(st, d)
	if err != nil {
		return nil, err
	}
	cursor, err := db.Connection.Execute(result.SQL, paramsFor(result))
	if err != nil {
		return nil, fmt.Errorf("crossql: update %s: %w", table.Name, err)
	}
	decoded, err := decodeCursor(db.Database, cursor)
	if err != nil {
		return nil, err
	}
	if db.Connection.Autocommit() {
		return decoded, nil
	}
	return decoded, db.Connection.Commit()
}

// DeleteRecords deletes every row matching where, returning the decoded
// RETURNING rows.
func (db *DB) DeleteRecords(table *schema.Table, where *expr.Condition) ([]*record.Record, error) {
	d, err := db.dialect()
	if err != nil {
		return nil, err
	}
	st := statement.NewDelete(table, where)
	result, err := transpile.Transpile(st, d)
	if err != nil {
		return nil, err
	}
	cursor, err := db.Connection.Execute(result.SQL, paramsFor(result))
	if err != nil {
		return nil, fmt.Errorf("crossql: delete from %s: %w", table.Name, err)
	}
	decoded, err := decodeCursor(db.Database, cursor)
	if err != nil {
		return nil, err
	}
	if db.Connection.Autocommit() {
		return decoded, nil
	}
	return decoded, db.Connection.Commit()
}

func decodeCursor(db *schema.Database, cursor dbconn.Cursor) ([]*record.Record, error) {
	defer cursor.Close()
	var rows [][]any
	for {
		row, ok := cursor.NextRow()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	if len(cursor.ColumnAliases()) == 0 {
		return []*record.Record{}, nil
	}
	return record.DecodeRows(db, cursor.ColumnAliases(), rows)
}
