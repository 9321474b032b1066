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

func TestNewUpdateRendersSetAndReturning(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")
	idCol, _ := words.ColumnByName("id")

	rec := record.New()
	rec.Set(wordCol, "bank")

	where, err := idCol.IsEqual(2)
	require.NoError(t, err)

	st, err := statement.NewUpdate(words, rec, where)
	require.NoError(t, err)

	sql, _ := st.TemplateSQL()
	assert.True(t, strings.HasPrefix(sql, "UPDATE words SET word = :"))
	assert.True(t, strings.HasSuffix(sql, "RETURNING id"))
}

func TestNewUpdateParamsUnionRecordBindingsAndWhere(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	wordCol, _ := words.ColumnByName("word")
	idCol, _ := words.ColumnByName("id")

	rec := record.New()
	rec.Set(wordCol, "bank")

	where, err := idCol.IsEqual(2)
	require.NoError(t, err)

	st, err := statement.NewUpdate(words, rec, where)
	require.NoError(t, err)

	params := st.TemplateParams()
	assert.Len(t, params, 2)
	var sawRecordValue, sawWhereValue bool
	for _, v := range params {
		switch v {
		case "bank":
			sawRecordValue = true
		case 2:
			sawWhereValue = true
		}
	}
	assert.True(t, sawRecordValue)
	assert.True(t, sawWhereValue)
}
