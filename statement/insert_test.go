package statement_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/statement"
)

func TestNewInsertIntoRendersColumnsAndReturning(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")

	rec := record.New()
	rec.Set(wordCol, "run")

	st, err := statement.NewInsertInto(words, rec)
	require.NoError(t, err)

	sql, _ := st.TemplateSQL()
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO words(word) VALUES(:"))
	assert.True(t, strings.HasSuffix(sql, "RETURNING id"))
	assert.Len(t, st.TemplateParams(), 1)
}

func TestInsertIntoRebindReusesParamNamesForBulkInsert(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")

	rec := record.New()
	rec.Set(wordCol, "run")
	st, err := statement.NewInsertInto(words, rec)
	require.NoError(t, err)
	sqlBefore, _ := st.TemplateSQL()

	rec2 := record.New()
	rec2.Set(wordCol, "bank")
	require.NoError(t, st.Rebind(rec2))

	sqlAfter, _ := st.TemplateSQL()
	assert.Equal(t, sqlBefore, sqlAfter)

	var sawBank bool
	for _, v := range st.TemplateParams() {
		if v == "bank" {
			sawBank = true
		}
	}
	assert.True(t, sawBank)
}

func TestInsertIntoRebindRejectsColumnOutsideOriginalInsert(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")
	pronCol, _ := words.ColumnByName("pronunciation")

	rec := record.New()
	rec.Set(wordCol, "run")
	st, err := statement.NewInsertInto(words, rec)
	require.NoError(t, err)

	other := record.New()
	other.Set(pronCol, "/rʌn/")
	assert.Error(t, st.Rebind(other))
}
