package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/record"
)

func TestDecodeRowResolvesPlainColumns(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")
	idCol, _ := words.ColumnByName("id")

	rec, err := record.DecodeRow(db, []string{"COLUMN.words.id", "COLUMN.words.word"}, []any{int64(1), "run"})
	require.NoError(t, err)

	word, ok := rec.Get(wordCol)
	require.True(t, ok)
	assert.Equal(t, "run", word)

	id, ok := rec.Get(idCol)
	require.True(t, ok)
	assert.EqualValues(t, 1, id)
}

func TestDecodeRowResolvesBareCountAlias(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)

	rec, err := record.DecodeRow(db, []string{"FUNCTION.COUNT"}, []any{int64(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Len())
}

func TestDecodeRowResolvesFunctionColumnAlias(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)

	rec, err := record.DecodeRow(db, []string{"FUNCTION.MAX.COLUMN.words.id"}, []any{int64(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Len())
}

func TestDecodeRowRejectsMismatchedAliasCount(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)

	_, err = record.DecodeRow(db, []string{"COLUMN.words.id"}, []any{int64(1), "extra"})
	assert.Error(t, err)
}

func TestDecodeRowsDecodesEveryRow(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)

	aliases := []string{"COLUMN.words.id", "COLUMN.words.word", "COLUMN.words.pronunciation"}
	recs, err := record.DecodeRows(db, aliases, crossqltest.ThreeWords())
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}
