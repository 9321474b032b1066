package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/statement"
	"github.com/crossql/crossql/transpile"
)

// fakeStatement is a minimal statement.Statement stand-in so these tests
// can drive the tokenizer/placeholder-reshape/RETURNING-rewrite pipeline
// directly against a known template, independent of any real builder.
type fakeStatement struct {
	sql    string
	params map[string]any
}

func (f *fakeStatement) TemplateSQL() (string, error)   { return f.sql, nil }
func (f *fakeStatement) TemplateParams() map[string]any { return f.params }

func TestSQLiteBetweenRoundTripsNamedPlaceholders(t *testing.T) {
	st := &fakeStatement{
		sql:    "SELECT COLUMN.words.id AS alias FROM words WHERE words.id BETWEEN :lo AND :hi",
		params: map[string]any{"lo": 1, "hi": 10},
	}
	result, err := transpile.Transpile(st, dialect.SQLite)
	require.NoError(t, err)

	assert.Equal(t, st.sql, result.SQL)
	assert.Equal(t, 1, result.Named["lo"])
	assert.Equal(t, 10, result.Named["hi"])
	assert.Nil(t, result.Positional)
}

func TestSQLServerReshapesNamedPlaceholdersToQuestionMarks(t *testing.T) {
	st := &fakeStatement{
		sql:    "SELECT COLUMN.users.id AS alias FROM users WHERE users.age BETWEEN :lo AND :hi",
		params: map[string]any{"lo": 18, "hi": 65},
	}
	result, err := transpile.Transpile(st, dialect.SQLServer)
	require.NoError(t, err)

	assert.Equal(t, "SELECT COLUMN.users.id AS alias FROM users WHERE users.age BETWEEN ? AND ?", result.SQL)
	assert.Equal(t, []any{18, 65}, result.Positional)
}

func TestPostgresReshapesRepeatedPlaceholderNameToDistinctDollarIndexes(t *testing.T) {
	st := &fakeStatement{
		sql:    "SELECT :a, :b, :a",
		params: map[string]any{"a": 1, "b": 2},
	}
	result, err := transpile.Transpile(st, dialect.PostgreSQL)
	require.NoError(t, err)

	assert.Equal(t, "SELECT $1, $2, $3", result.SQL)
	assert.Equal(t, []any{1, 2, 1}, result.Positional)
}

func TestMySQLStripsReturningClauseEntirely(t *testing.T) {
	st := &fakeStatement{
		sql:    "INSERT INTO words(word) VALUES(:w) RETURNING id",
		params: map[string]any{"w": "run"},
	}
	result, err := transpile.Transpile(st, dialect.MySQL)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO words(word) VALUES(?)", result.SQL)
}

func TestSQLServerSplicesOutputBeforeWhereForUpdate(t *testing.T) {
	st := &fakeStatement{
		sql:    "UPDATE words SET word = :w WHERE words.id = :id RETURNING id",
		params: map[string]any{"w": "bank", "id": 2},
	}
	result, err := transpile.Transpile(st, dialect.SQLServer)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE words SET word = ? OUTPUT INSERTED.id WHERE words.id = ?", result.SQL)
}

func TestSQLServerSplicesOutputDeletedForDelete(t *testing.T) {
	st := &fakeStatement{
		sql:    "DELETE FROM words WHERE words.id = :id RETURNING id",
		params: map[string]any{"id": 3},
	}
	result, err := transpile.Transpile(st, dialect.SQLServer)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM words OUTPUT DELETED.id WHERE words.id = ?", result.SQL)
}

func TestSQLServerSplicesOutputBeforeValuesForInsert(t *testing.T) {
	st := &fakeStatement{
		sql:    "INSERT INTO words(word) VALUES(:w) RETURNING id",
		params: map[string]any{"w": "run"},
	}
	result, err := transpile.Transpile(st, dialect.SQLServer)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO words(word) OUTPUT INSERTED.id VALUES(?)", result.SQL)
}

func TestTranspileRejectsUnknownDialect(t *testing.T) {
	st := &fakeStatement{sql: "SELECT 1", params: map[string]any{}}
	_, err := transpile.Transpile(st, dialect.Dialect("oracle"))
	assert.Error(t, err)
}

func TestTranspileRejectsUnboundPlaceholder(t *testing.T) {
	st := &fakeStatement{sql: "SELECT :missing", params: map[string]any{}}
	_, err := transpile.Transpile(st, dialect.SQLite)
	assert.Error(t, err)
}

func TestSingleQuotedLiteralsAreNotTreatedAsPlaceholders(t *testing.T) {
	st := &fakeStatement{
		sql:    "SELECT * FROM words WHERE words.word = 'it''s :not_a_param'",
		params: map[string]any{},
	}
	result, err := transpile.Transpile(st, dialect.SQLite)
	require.NoError(t, err)
	assert.Equal(t, st.sql, result.SQL)
}

// Exercise a real statement builder end to end, not just the fake above.
func TestRealSelectStatementTranspilesForEveryDialect(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")

	cond, err := words.Columns[0].IsGreaterThan(0)
	require.NoError(t, err)
	sel, err := statement.NewSelect(statement.SelectSpec{Table: words, Where: cond})
	require.NoError(t, err)

	for _, d := range []dialect.Dialect{dialect.SQLite, dialect.SQLServer, dialect.PostgreSQL, dialect.MySQL} {
		result, err := transpile.Transpile(sel, d)
		require.NoError(t, err, "dialect %s", d)
		assert.NotEmpty(t, result.SQL, "dialect %s", d)
	}
}
