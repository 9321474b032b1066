package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/statement"
)

func TestNewDropTableWithIfExists(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")

	st := statement.NewDropTable(words, true)
	sql, _ := st.TemplateSQL()
	assert.Equal(t, "DROP TABLE IF EXISTS words", sql)
	assert.Empty(t, st.TemplateParams())
}

func TestNewDropTableWithoutIfExists(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")

	st := statement.NewDropTable(words, false)
	sql, _ := st.TemplateSQL()
	assert.Equal(t, "DROP TABLE words", sql)
}
