// Package crossqltest provides the dictionary fixture schema and an
// in-memory fake Connection used across the module's unit tests, per
// spec.md §8's end-to-end scenarios: "words(id,word,pronunciation),
// meanings(id,word_id,definition,part_of_speech), tags(id,tag),
// users(id,username,email), user_progress(user_id, meaning_id, attempts,
// correct, last_seen)". Grounded on the teacher's table-driven fixture
// style (schema/generator_test.go's inline test schemas).
package crossqltest

import (
	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/sqltype"
)

// DictionarySchema builds the words/meanings/tags/users/user_progress
// fixture bound to dialectName, for use by any package's tests.
func DictionarySchema(dialectName string) (*schema.Database, error) {
	words := &schema.Table{
		Name: "words",
		Columns: []*schema.Column{
			{Name: "id", DataType: sqltype.Integer(), PrimaryKey: true, AutoIncrement: true},
			{Name: "word", DataType: sqltype.Text(), NotNull: true},
			{Name: "pronunciation", DataType: sqltype.Text()},
		},
	}

	meanings := &schema.Table{
		Name: "meanings",
		Columns: []*schema.Column{
			{Name: "id", DataType: sqltype.Integer(), PrimaryKey: true, AutoIncrement: true},
			{Name: "word_id", DataType: sqltype.Integer(), NotNull: true},
			{Name: "definition", DataType: sqltype.Text(), NotNull: true},
			{Name: "part_of_speech", DataType: sqltype.Text()},
		},
	}
	meanings.Columns[1].Reference = words.Columns[0]
	words.Columns[0].ForeignKeys = append(words.Columns[0].ForeignKeys, meanings.Columns[1])

	tags := &schema.Table{
		Name: "tags",
		Columns: []*schema.Column{
			{Name: "id", DataType: sqltype.Integer(), PrimaryKey: true, AutoIncrement: true},
			{Name: "tag", DataType: sqltype.Text(), NotNull: true, Unique: true},
		},
	}

	users := &schema.Table{
		Name: "users",
		Columns: []*schema.Column{
			{Name: "id", DataType: sqltype.Integer(), PrimaryKey: true, AutoIncrement: true},
			{Name: "username", DataType: sqltype.Text(), NotNull: true, Unique: true},
			{Name: "email", DataType: sqltype.Text(), NotNull: true, Unique: true},
		},
	}

	userProgress := &schema.Table{
		Name: "user_progress",
		Columns: []*schema.Column{
			{Name: "user_id", DataType: sqltype.Integer(), PrimaryKey: true},
			{Name: "meaning_id", DataType: sqltype.Integer(), PrimaryKey: true},
			{Name: "attempts", DataType: sqltype.Integer(), NotNull: true},
			{Name: "correct", DataType: sqltype.Integer(), NotNull: true},
			{Name: "last_seen", DataType: sqltype.DateTime()},
		},
	}
	userProgress.Columns[0].Reference = users.Columns[0]
	users.Columns[0].ForeignKeys = append(users.Columns[0].ForeignKeys, userProgress.Columns[0])
	userProgress.Columns[1].Reference = meanings.Columns[0]
	meanings.Columns[0].ForeignKeys = append(meanings.Columns[0].ForeignKeys, userProgress.Columns[1])

	return schema.NewDatabase("dictionary", dialectName, []*schema.Table{
		words, meanings, tags, users, userProgress,
	})
}

// ThreeWords seeds the three canonical rows spec.md §8's scenarios
// assume: {1,"run",…}, {2,"bank",…}, {3,"set",…}.
func ThreeWords() [][]any {
	return [][]any{
		{int64(1), "run", "/rʌn/"},
		{int64(2), "bank", "/bæŋk/"},
		{int64(3), "set", "/sɛt/"},
	}
}
