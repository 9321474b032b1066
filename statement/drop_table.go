package statement

import (
	"strings"

	"github.com/crossql/crossql/schema"
)

// DropTable renders "DROP TABLE [IF EXISTS] <fqn>", per spec.md §4.5.
type DropTable struct {
	table    *schema.Table
	ifExists bool
	sql      string
}

// NewDropTable builds a DropTable statement for table.
func NewDropTable(table *schema.Table, ifExists bool) *DropTable {
	st := &DropTable{table: table, ifExists: ifExists}
	var b strings.Builder
	b.WriteString("DROP TABLE ")
	if ifExists {
		b.WriteString("IF EXISTS ")
	}
	b.WriteString(table.FullyQualifiedName())
	st.sql = b.String()
	return st
}

func (st *DropTable) TemplateSQL() (string, error)   { return st.sql, nil }
func (st *DropTable) TemplateParams() map[string]any { return map[string]any{} }
func (st *DropTable) Table() *schema.Table            { return st.table }
