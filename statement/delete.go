package statement

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/schema"
)

// Delete renders "DELETE FROM t WHERE <cond> RETURNING <pk>", per
// spec.md §4.5.
type Delete struct {
	table *schema.Table
	where *expr.Condition
	sql   string
}

// NewDelete builds a Delete statement over table. where may be nil, which
// deletes every row.
func NewDelete(table *schema.Table, where *expr.Condition) *Delete {
	st := &Delete{table: table, where: where}

	pkName := ""
	if pk := table.PrimaryKey(); pk != nil {
		pkName = pk.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DELETE FROM %s", table.FullyQualifiedName())
	if where != nil {
		fmt.Fprintf(&b, " WHERE %s", where.SQL())
	}
	fmt.Fprintf(&b, " RETURNING %s", pkName)
	st.sql = b.String()
	return st
}

func (st *Delete) TemplateSQL() (string, error) { return st.sql, nil }
func (st *Delete) TemplateParams() map[string]any {
	if st.where == nil {
		return map[string]any{}
	}
	return st.where.Params()
}
func (st *Delete) Table() *schema.Table { return st.table }
