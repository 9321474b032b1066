package crossql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql"
	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/statement"
	"github.com/crossql/crossql/transpile"
)

func newDictionaryDB(t *testing.T) (*crossql.DB, *crossqltest.FakeConnection) {
	t.Helper()
	schemaDB, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	fake := crossqltest.NewFakeConnection()
	schemaDB.Connection = fake
	return crossql.Open(schemaDB), fake
}

func TestSelectRecordsDecodesCountOverThreeWords(t *testing.T) {
	db, fake := newDictionaryDB(t)
	words, ok := db.TableByName("words")
	require.True(t, ok)

	count := expr.Count(nil)
	spec := statement.SelectSpec{Table: words, Items: []expr.ColumnOperand{count}}

	sel, err := statement.NewSelect(spec)
	require.NoError(t, err)
	result, err := transpile.Transpile(sel, dialect.SQLite)
	require.NoError(t, err)
	fake.Stub(result.SQL, crossqltest.NewFakeCursor([]string{"FUNCTION.COUNT"}, [][]any{{int64(3)}}))

	records, err := db.SelectRecords(spec)
	require.NoError(t, err)
	require.Len(t, records, 1)

	value, ok := records[0].Get(count)
	require.True(t, ok)
	assert.Equal(t, int64(3), value)
}

func TestSelectRecordsOverAllColumns(t *testing.T) {
	db, fake := newDictionaryDB(t)
	words, _ := db.TableByName("words")
	spec := statement.SelectSpec{Table: words}

	sel, err := statement.NewSelect(spec)
	require.NoError(t, err)
	result, err := transpile.Transpile(sel, dialect.SQLite)
	require.NoError(t, err)

	aliases := []string{"COLUMN.words.id", "COLUMN.words.word", "COLUMN.words.pronunciation"}
	fake.Stub(result.SQL, crossqltest.NewFakeCursor(aliases, crossqltest.ThreeWords()))

	records, err := db.SelectRecords(spec)
	require.NoError(t, err)
	require.Len(t, records, 3)

	wordCol, _ := words.ColumnByName("word")
	got, _ := records[1].Get(wordCol)
	assert.Equal(t, "bank", got)
}

func TestInsertRecordsReturnsEmptyNotNilOnNoReturningRow(t *testing.T) {
	schemaDB, err := crossqltest.DictionarySchema(dialect.MySQL.String())
	require.NoError(t, err)
	fake := crossqltest.NewFakeConnection()
	schemaDB.Connection = fake
	db := crossql.Open(schemaDB)

	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")

	// Each InsertInto build salts its own bind-parameter names (spec.md
	// §5), so the rendered SQL can't be known ahead of construction to
	// pre-stub by exact text. FakeConnection's unstubbed-call fallback (an
	// empty Cursor, no aliases) exercises exactly what MySQL's stripped
	// RETURNING clause should produce.
	rec := record.New()
	rec.Set(wordCol, "set")
	out, err := db.InsertRecords(words, rec)
	require.NoError(t, err)

	assert.Len(t, fake.Executed, 1)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
