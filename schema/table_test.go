package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/crossqltest"
	"github.com/crossql/crossql/dialect"
)

func TestFullyQualifiedNameBareUnlessAttached(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	assert.Equal(t, "words", words.FullyQualifiedName())
}

func TestFullyQualifiedNameQualifiedWhenAttached(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	other, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	db.Attach("lexicon", other)

	attached, ok := db.Attached("lexicon")
	require.True(t, ok)
	words, _ := attached.TableByName("words")

	assert.Equal(t, "lexicon.words", words.FullyQualifiedName())
}

func TestFullyQualifiedNameOnSQLServerIncludesSchema(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLServer.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	assert.Equal(t, "dictionary.dbo.words", words.FullyQualifiedName())
}

func TestJoinLocatesForeignKeyInEitherDirection(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	meanings, _ := db.TableByName("meanings")

	j, err := words.Join(meanings, "")
	require.NoError(t, err)
	assert.Contains(t, j.SQL(), "meanings")

	j2, err := meanings.Join(words, "")
	require.NoError(t, err)
	assert.Contains(t, j2.SQL(), "words")
}

func TestJoinReturnsErrorWhenNoForeignKeyExists(t *testing.T) {
	db, err := crossqltest.DictionarySchema(dialect.SQLite.String())
	require.NoError(t, err)
	words, _ := db.TableByName("words")
	tags, _ := db.TableByName("tags")

	_, err = words.Join(tags, "")
	assert.Error(t, err)
}
