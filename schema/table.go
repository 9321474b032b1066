package schema

import (
	"fmt"

	"github.com/crossql/crossql/expr"
)

// Table is a named, ordered set of columns with an optional schema name
// and a back-reference to its owning Database, set at binding time
// (spec.md §3).
type Table struct {
	Name       string
	SchemaName string // optional; used by SQL Server's db.schema.table form
	Columns    []*Column

	Database *Database
}

// FullyQualifiedName is dialect-dependent per spec.md §3: SQL Server
// renders "db.schema.table", SQLite renders "db.table" only when the
// database is attached under that name, and otherwise tables render bare.
func (t *Table) FullyQualifiedName() string {
	if t.Database == nil {
		return t.Name
	}
	switch t.Database.Dialect {
	case "tsql":
		schemaName := t.SchemaName
		if schemaName == "" {
			schemaName = t.Database.DefaultSchema
		}
		if schemaName == "" {
			schemaName = "dbo"
		}
		return fmt.Sprintf("%s.%s.%s", t.Database.Name, schemaName, t.Name)
	case "sqlite":
		if t.Database.attachedAs != "" {
			return fmt.Sprintf("%s.%s", t.Database.attachedAs, t.Name)
		}
		return t.Name
	default:
		return t.Name
	}
}

// PrimaryKey returns the table's primary-key column, or nil if none is
// declared.
func (t *Table) PrimaryKey() *Column {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c
		}
	}
	return nil
}

// ForeignKeyColumns returns every column on this table that references
// another table's column.
func (t *Table) ForeignKeyColumns() []*Column {
	var out []*Column
	for _, c := range t.Columns {
		if c.Reference != nil {
			out = append(out, c)
		}
	}
	return out
}

// ReferencedTables returns the set of tables this table's foreign keys
// point at, used by callers to order DROP/CREATE statements.
func (t *Table) ReferencedTables() []*Table {
	seen := map[*Table]bool{}
	var out []*Table
	for _, c := range t.ForeignKeyColumns() {
		if c.Reference == nil || c.Reference.Table == nil {
			continue
		}
		target := c.Reference.Table
		if !seen[target] {
			seen[target] = true
			out = append(out, target)
		}
	}
	return out
}

// ColumnByName looks a column up by bare name.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Join builds an INNER join (or typ if given) from this table to other by
// locating a foreign-key column in either direction (other → this first,
// then this → other), per spec.md §4.4. Returns NoForeignKey when neither
// direction has one.
func (t *Table) Join(other *Table, typ expr.JoinType) (*expr.Join, error) {
	for _, fk := range other.ForeignKeyColumns() {
		if fk.Reference != nil && fk.Reference.Table == t {
			return expr.NewJoin(other, typ, expr.Equal, expr.ColumnPair{Left: fk.Reference, Right: fk})
		}
	}
	for _, fk := range t.ForeignKeyColumns() {
		if fk.Reference != nil && fk.Reference.Table == other {
			return expr.NewJoin(other, typ, expr.Equal, expr.ColumnPair{Left: fk, Right: fk.Reference})
		}
	}
	return nil, newError(NoForeignKey, "no foreign key between %s and %s", t.Name, other.Name)
}

// CloneTable deep-copies a table template (name, schema name, and every
// column) so it can be reused across more than one Database. Per spec.md
// §4.1 point 3, each column's Clone moves the foreign-key edges from the
// template column to its copy: columns that referenced the template column
// now reference the copy, and the template column's ForeignKeys list is
// emptied.
func CloneTable(t *Table) *Table {
	clone := &Table{Name: t.Name, SchemaName: t.SchemaName}
	clone.Columns = make([]*Column, len(t.Columns))
	for i, c := range t.Columns {
		clone.Columns[i] = c.Clone(clone)
	}
	return clone
}
