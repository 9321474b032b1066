package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/config"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConnectionConfigParsesAndValidates(t *testing.T) {
	path := writeFile(t, "connection.yml", `
dialect: postgres
host: localhost
port: 5432
user: crossql
password: secret
database: dictionary
`)
	cfg, err := config.LoadConnectionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "dictionary", cfg.Database)

	d, err := cfg.DialectValue()
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.String())
}

func TestLoadConnectionConfigRejectsMissingDatabase(t *testing.T) {
	path := writeFile(t, "connection.yml", `
dialect: sqlite
path: ":memory:"
`)
	_, err := config.LoadConnectionConfig(path)
	assert.Error(t, err)
}

func TestLoadConnectionConfigRejectsUnknownDialect(t *testing.T) {
	path := writeFile(t, "connection.yml", `
dialect: oracle
database: dictionary
`)
	_, err := config.LoadConnectionConfig(path)
	assert.Error(t, err)
}

func TestSchemaConfigBuildResolvesForeignKeyReferences(t *testing.T) {
	path := writeFile(t, "schema.yml", `
name: dictionary
dialect: sqlite
tables:
  - name: words
    columns:
      - name: id
        type: INTEGER
        primary_key: true
        auto_increment: true
      - name: word
        type: TEXT
        not_null: true
  - name: meanings
    columns:
      - name: id
        type: INTEGER
        primary_key: true
        auto_increment: true
      - name: word_id
        type: INTEGER
        not_null: true
        references: words.id
`)
	cfg, err := config.LoadSchemaConfig(path)
	require.NoError(t, err)

	db, err := cfg.Build()
	require.NoError(t, err)

	meanings, ok := db.TableByName("meanings")
	require.True(t, ok)
	wordID, ok := meanings.ColumnByName("word_id")
	require.True(t, ok)
	require.NotNil(t, wordID.Reference)
	assert.Equal(t, "id", wordID.Reference.Name)
}

func TestSchemaConfigBuildRejectsUnknownReferenceTable(t *testing.T) {
	path := writeFile(t, "schema.yml", `
name: dictionary
dialect: sqlite
tables:
  - name: meanings
    columns:
      - name: id
        type: INTEGER
        primary_key: true
      - name: word_id
        type: INTEGER
        references: words.id
`)
	cfg, err := config.LoadSchemaConfig(path)
	require.NoError(t, err)

	_, err = cfg.Build()
	assert.Error(t, err)
}
