package statement

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/schema"
)

// Update renders "UPDATE t SET col=:p… WHERE <cond> RETURNING <pk>", per
// spec.md §4.5. Parameters are the record's bindings unioned with the
// where clause's own params; on a name collision the where clause's
// parameter wins, since it was bound independently and may be reused
// across callers (spec.md §4.5).
type Update struct {
	table  *schema.Table
	where  *expr.Condition
	sql    string
	params map[string]any
}

// NewUpdate builds an Update statement setting rec's columns on every row
// matching where.
func NewUpdate(table *schema.Table, rec *record.Record, where *expr.Condition) (*Update, error) {
	bindings, err := rec.ToDatabaseParameters()
	if err != nil {
		return nil, err
	}

	st := &Update{table: table, where: where, params: map[string]any{}}

	var sets []string
	for _, b := range bindings {
		col, ok := b.Key.(*schema.Column)
		if !ok {
			return nil, newError(WrongItemType, "Update record key %s is not a column", b.Key.FullyQualifiedName())
		}
		sets = append(sets, fmt.Sprintf("%s = :%s", col.Name, b.ParamName))
		st.params[b.ParamName] = b.Value
	}

	pkName := ""
	if pk := table.PrimaryKey(); pk != nil {
		pkName = pk.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "UPDATE %s SET %s", table.FullyQualifiedName(), strings.Join(sets, ", "))
	if where != nil {
		fmt.Fprintf(&b, " WHERE %s", where.SQL())
		for k, v := range where.Params() {
			st.params[k] = v
		}
	}
	fmt.Fprintf(&b, " RETURNING %s", pkName)
	st.sql = b.String()
	return st, nil
}

func (st *Update) TemplateSQL() (string, error) { return st.sql, nil }
func (st *Update) TemplateParams() map[string]any {
	out := make(map[string]any, len(st.params))
	for k, v := range st.params {
		out[k] = v
	}
	return out
}
func (st *Update) Table() *schema.Table { return st.table }
