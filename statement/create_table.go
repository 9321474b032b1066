package statement

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/util"
)

// CreateTable renders "CREATE TABLE [IF NOT EXISTS] <fqn> (<col defs>,
// PRIMARY KEY(<pk>), FOREIGN KEY(<c>) REFERENCES <fqn>(<c>)…)", per
// spec.md §4.5/§6. It carries no parameters.
type CreateTable struct {
	table       *schema.Table
	ifNotExists bool
	sql         string
}

// NewCreateTable builds a CreateTable statement for table.
func NewCreateTable(table *schema.Table, ifNotExists bool) *CreateTable {
	st := &CreateTable{table: table, ifNotExists: ifNotExists}
	st.sql = st.render()
	return st
}

func (st *CreateTable) render() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if st.ifNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(st.table.FullyQualifiedName())
	b.WriteString(" (")

	dialectName := "sqlite"
	if st.table.Database != nil {
		dialectName = st.table.Database.Dialect
	}

	var parts []string
	for _, col := range st.table.Columns {
		parts = append(parts, col.ColumnDefinitionSQL(dialectName))
	}
	if pk := st.table.PrimaryKey(); pk != nil {
		parts = append(parts, fmt.Sprintf("PRIMARY KEY(%s)", pk.Name))
	}
	for _, fk := range st.table.ForeignKeyColumns() {
		clause := fmt.Sprintf("FOREIGN KEY(%s) REFERENCES %s(%s)",
			fk.Name, fk.Reference.Table.FullyQualifiedName(), fk.Reference.Name)
		if dialectName == "postgres" {
			// PostgreSQL truncates/derives constraint names itself when
			// none is given, but a declared one avoids its NAMEDATALEN
			// (63 byte) collision surface on long table/column pairs.
			name := util.BuildPostgresConstraintName(st.table.Name, fk.Name, "fkey")
			clause = fmt.Sprintf("CONSTRAINT %s %s", name, clause)
		}
		parts = append(parts, clause)
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	return b.String()
}

func (st *CreateTable) TemplateSQL() (string, error)    { return st.sql, nil }
func (st *CreateTable) TemplateParams() map[string]any { return map[string]any{} }
func (st *CreateTable) Table() *schema.Table            { return st.table }
