package crossqltest

import "github.com/crossql/crossql/dbconn"

// FakeConnection is an in-memory dbconn.Connection stand-in for unit
// tests that don't need a real driver: Execute looks up a canned Cursor
// response by the exact SQL text it receives. Grounded on the teacher's
// testutil fake-database style.
type FakeConnection struct {
	Responses map[string]*FakeCursor
	Executed  []ExecutedCall
	committed bool
}

// ExecutedCall records one Execute invocation for test assertions.
type ExecutedCall struct {
	SQL    string
	Params any
}

// NewFakeConnection returns an empty FakeConnection; use Stub to register
// responses before exercising code under test.
func NewFakeConnection() *FakeConnection {
	return &FakeConnection{Responses: map[string]*FakeCursor{}}
}

// Stub registers the Cursor Execute returns whenever it sees exactly this
// SQL text. The same Cursor is returned on every match, so its rows are
// served only once.
func (c *FakeConnection) Stub(sql string, cursor *FakeCursor) {
	c.Responses[sql] = cursor
}

func (c *FakeConnection) Execute(sql string, params any) (dbconn.Cursor, error) {
	c.Executed = append(c.Executed, ExecutedCall{SQL: sql, Params: params})
	if cursor, ok := c.Responses[sql]; ok {
		return cursor, nil
	}
	return &FakeCursor{}, nil
}

func (c *FakeConnection) Commit() error   { c.committed = true; return nil }
func (c *FakeConnection) Rollback() error { return nil }
func (c *FakeConnection) Close() error    { return nil }
func (c *FakeConnection) Autocommit() bool { return true }

// FakeCursor is a canned in-memory Cursor: a fixed set of column aliases
// and rows, served in order.
type FakeCursor struct {
	Aliases      []string
	Rows         [][]any
	InsertID     int64
	HasInsertID  bool
	pos          int
}

func NewFakeCursor(aliases []string, rows [][]any) *FakeCursor {
	return &FakeCursor{Aliases: aliases, Rows: rows}
}

func (c *FakeCursor) ColumnAliases() []string { return c.Aliases }

func (c *FakeCursor) NextRow() ([]any, bool) {
	if c.pos >= len(c.Rows) {
		return nil, false
	}
	row := c.Rows[c.pos]
	c.pos++
	return row, true
}

func (c *FakeCursor) LastInsertID() (int64, bool) { return c.InsertID, c.HasInsertID }

func (c *FakeCursor) Close() error { return nil }
