package statement_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/statement"
)

func TestNewDeleteWithoutWhereDeletesEveryRow(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")

	st := statement.NewDelete(words, nil)
	sql, _ := st.TemplateSQL()
	assert.Equal(t, "DELETE FROM words RETURNING id", sql)
	assert.Empty(t, st.TemplateParams())
}

func TestNewDeleteWithWhereRendersClauseAndParams(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	idCol, _ := words.ColumnByName("id")

	where, err := idCol.IsEqual(1)
	require.NoError(t, err)
	st := statement.NewDelete(words, where)
	sql, _ := st.TemplateSQL()
	assert.True(t, strings.Contains(sql, "WHERE words.id = :"))
	assert.Len(t, st.TemplateParams(), 1)
}
