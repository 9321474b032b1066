package statement

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/util"
)

// OrderItem is one entry in a Select's ORDER BY list.
type OrderItem struct {
	Item expr.ColumnOperand
	Desc bool
}

// SelectSpec is the full set of inputs to NewSelect, mirroring spec.md
// §4.5's Select contract.
type SelectSpec struct {
	Table *schema.Table
	// Items defaults to every column of Table, in declaration order, when
	// left empty.
	Items      []expr.ColumnOperand
	Where      *expr.Condition
	Joins      []*expr.Join
	GroupBy    []expr.ColumnOperand
	Having     *expr.Condition
	OrderBy    []OrderItem
	Distinct   bool
	Limit      *int
	Offset     *int
	IsSubquery bool
}

// Select renders a full SELECT statement. It satisfies both
// statement.Statement and expr.SubSelect, so a Select can be nested as a
// condition operand (spec.md §4.2) or stood up on its own.
type Select struct {
	spec SelectSpec
	sql  string
}

// NewSelect builds a Select from spec, rendering eagerly and aggregating
// parameters as (where.params ∪ having.params ∪ join params), per spec.md
// §4.5.
func NewSelect(spec SelectSpec) (*Select, error) {
	if spec.Table == nil {
		return nil, newError(WrongItemType, "Select requires a table")
	}
	if len(spec.Items) == 0 {
		spec.Items = util.TransformSlice(spec.Table.Columns, func(c *schema.Column) expr.ColumnOperand {
			return c
		})
	}

	st := &Select{spec: spec}
	sql, err := st.render()
	if err != nil {
		return nil, err
	}
	st.sql = sql
	return st, nil
}

func (st *Select) render() (string, error) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if st.spec.Distinct {
		b.WriteString("DISTINCT ")
	}

	items := make([]string, len(st.spec.Items))
	for i, item := range st.spec.Items {
		items[i] = fmt.Sprintf("%s AS %s", item.SQL(), item.Alias())
	}
	b.WriteString(strings.Join(items, ", "))

	fmt.Fprintf(&b, " FROM %s", st.spec.Table.FullyQualifiedName())

	for _, j := range st.spec.Joins {
		b.WriteString(" ")
		b.WriteString(j.SQL())
	}

	if st.spec.Where != nil {
		fmt.Fprintf(&b, " WHERE %s", st.spec.Where.SQL())
	}

	if len(st.spec.GroupBy) > 0 {
		cols := make([]string, len(st.spec.GroupBy))
		for i, col := range st.spec.GroupBy {
			cols[i] = col.SQL()
		}
		fmt.Fprintf(&b, " GROUP BY %s", strings.Join(cols, ", "))
	}

	if st.spec.Having != nil {
		fmt.Fprintf(&b, " HAVING %s", st.spec.Having.SQL())
	}

	if len(st.spec.OrderBy) > 0 {
		parts := make([]string, len(st.spec.OrderBy))
		for i, o := range st.spec.OrderBy {
			if o.Desc {
				parts[i] = o.Item.SQL() + " DESC"
			} else {
				parts[i] = o.Item.SQL() + " ASC"
			}
		}
		fmt.Fprintf(&b, " ORDER BY %s", strings.Join(parts, ", "))
	}

	if st.spec.Limit != nil {
		fmt.Fprintf(&b, " LIMIT %d", *st.spec.Limit)
	}
	if st.spec.Offset != nil {
		fmt.Fprintf(&b, " OFFSET %d", *st.spec.Offset)
	}

	return b.String(), nil
}

// TemplateSQL returns the canonical rendering. Select renders eagerly at
// construction, so err is always nil.
func (st *Select) TemplateSQL() (string, error) { return st.sql, nil }

// TemplateParams returns the union of where, having, and join parameters.
func (st *Select) TemplateParams() map[string]any {
	maps := []map[string]any{}
	if st.spec.Where != nil {
		maps = append(maps, st.spec.Where.Params())
	}
	if st.spec.Having != nil {
		maps = append(maps, st.spec.Having.Params())
	}
	for _, j := range st.spec.Joins {
		maps = append(maps, j.Params())
	}
	return mergeParams(maps...)
}

// SQL satisfies expr.Operand/expr.SubSelect's Operand embedding: a Select
// nested as a condition operand renders parenthesized.
func (st *Select) SQL() string { return "(" + st.sql + ")" }

// ConvertToDatabase passes the value straight through: a scalar sub-select
// compares against its single projected column's already-converted SQL
// result, not a Go-side literal.
func (st *Select) ConvertToDatabase(value any) (any, error) { return value, nil }

// ProjectedColumnCount is the number of items this Select projects, used
// to validate scalar sub-select usage (spec.md §4.2).
func (st *Select) ProjectedColumnCount() int { return len(st.spec.Items) }

// Table returns the Select's source table.
func (st *Select) Table() *schema.Table { return st.spec.Table }

// IsSubquery reports whether this Select was built for nesting (spec.md
// §4.5's is_subquery flag); purely informational, since TemplateSQL/SQL
// already render the correct form for either use.
func (st *Select) IsSubquery() bool { return st.spec.IsSubquery }
