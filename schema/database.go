package schema

import (
	"github.com/crossql/crossql/dbconn"
	"github.com/crossql/crossql/sqltype"
)

// Database is a named collection of tables bound to one dialect, with an
// optional default schema, a backend Connection, and a map of attached
// sibling databases for cross-database joins (spec.md §3).
type Database struct {
	Name          string
	Dialect       string // one of dialect.SQLite/SQLServer/PostgreSQL/MySQL's string values
	DefaultSchema string
	Tables        []*Table
	Connection    dbconn.Connection

	attached   map[string]*Database
	attachedAs string // set on the attached database, not the attaching one

	typeCatalogue map[string]*sqltype.DataType
}

// NewDatabase constructs a Database and performs schema binding
// (spec.md §4.1): each table's Database back-reference is set, each
// column's Table back-reference is set, and each column's data type is
// bound — non-parameterized types are deduplicated by name and deep-copied
// once per database; parameterized types are bound in place.
//
// Fails with a *Error{Kind: MissingDeclaration} when tables is empty, and
// with *Error{Kind: UnknownDataType} when a column's data type name isn't
// registered in the base catalogue and wasn't already resolvable.
func NewDatabase(name, dialectName string, tables []*Table) (*Database, error) {
	if len(tables) == 0 {
		return nil, newError(MissingDeclaration, "database %s declares no tables", name)
	}

	db := &Database{
		Name:          name,
		Dialect:       dialectName,
		Tables:        tables,
		attached:      map[string]*Database{},
		typeCatalogue: map[string]*sqltype.DataType{},
	}

	for _, table := range tables {
		table.Database = db
		for _, col := range table.Columns {
			col.Table = table
			if err := db.bindDataType(col); err != nil {
				return nil, err
			}
		}
	}
	return db, nil
}

func (db *Database) bindDataType(col *Column) error {
	if col.DataType == nil {
		return newError(UnknownDataType, "column %s has no data type", col.Name)
	}
	if _, ok := sqltype.ByName(col.DataType.Name); !ok {
		// Unknown base name is only an error the first time we see it
		// un-bound; a type that's already bound to this database (e.g.
		// shared via the catalogue) is fine.
		if _, bound := db.typeCatalogue[col.DataType.Name]; !bound && col.DataType.BoundDialect == "" {
			return newError(UnknownDataType, "column %s declares unknown data type %q", col.Name, col.DataType.Name)
		}
	}

	if col.DataType.IsParameterized() {
		col.DataType.BoundDialect = db.Dialect
		return nil
	}

	shared, ok := db.typeCatalogue[col.DataType.Name]
	if !ok {
		shared = col.DataType.Clone()
		shared.BoundDialect = db.Dialect
		db.typeCatalogue[col.DataType.Name] = shared
	}
	col.DataType = shared
	return nil
}

// Attach registers other as a sibling database reachable under name, for
// cross-database joins where the dialect supports it (e.g. SQLite's
// ATTACH DATABASE). On SQLite, other's tables then render their
// FullyQualifiedName with name as the prefix; other dialects ignore it.
func (db *Database) Attach(name string, other *Database) {
	db.attached[name] = other
	other.attachedAs = name
}

// Attached looks up a previously attached sibling database by name.
func (db *Database) Attached(name string) (*Database, bool) {
	other, ok := db.attached[name]
	return other, ok
}

// TableByName looks a table up by bare name.
func (db *Database) TableByName(name string) (*Table, bool) {
	for _, t := range db.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
