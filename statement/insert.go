package statement

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/schema"
)

// InsertInto renders "INSERT INTO t(cols…) VALUES(:p…) RETURNING <pk>",
// per spec.md §4.5. For bulk insert, the caller reuses the same statement
// and calls Rebind to rewrite parameter values in place without
// regenerating placeholder names or re-rendering SQL (spec.md §4.5:
// "the caller reuses the same statement and rebinds parameter values in
// order").
type InsertInto struct {
	table       *schema.Table
	columnOrder []string
	paramOf     map[string]string // column name -> bind parameter name
	params      map[string]any
	sql         string
}

// NewInsertInto builds an InsertInto statement from rec's columns.
func NewInsertInto(table *schema.Table, rec *record.Record) (*InsertInto, error) {
	bindings, err := rec.ToDatabaseParameters()
	if err != nil {
		return nil, err
	}

	st := &InsertInto{
		table:   table,
		paramOf: map[string]string{},
		params:  map[string]any{},
	}

	var cols, placeholders []string
	for _, b := range bindings {
		col, ok := b.Key.(*schema.Column)
		if !ok {
			return nil, newError(WrongItemType, "InsertInto record key %s is not a column", b.Key.FullyQualifiedName())
		}
		cols = append(cols, col.Name)
		placeholders = append(placeholders, ":"+b.ParamName)
		st.columnOrder = append(st.columnOrder, col.Name)
		st.paramOf[col.Name] = b.ParamName
		st.params[b.ParamName] = b.Value
	}

	pkName := ""
	if pk := table.PrimaryKey(); pk != nil {
		pkName = pk.Name
	}
	st.sql = fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s) RETURNING %s",
		table.FullyQualifiedName(), strings.Join(cols, ", "), strings.Join(placeholders, ", "), pkName)
	return st, nil
}

// Rebind rewrites this statement's bound values from rec, reusing the
// original parameter names (and thus the original rendered SQL) so the
// same InsertInto can be executed repeatedly for a bulk insert.
func (st *InsertInto) Rebind(rec *record.Record) error {
	for _, key := range rec.Keys() {
		col, ok := key.(*schema.Column)
		if !ok {
			continue
		}
		paramName, ok := st.paramOf[col.Name]
		if !ok {
			return fmt.Errorf("statement: Rebind: column %s was not part of the original insert", col.Name)
		}
		value, _ := rec.Get(key)
		converted, err := col.ConvertToDatabase(value)
		if err != nil {
			return err
		}
		st.params[paramName] = converted
	}
	return nil
}

func (st *InsertInto) TemplateSQL() (string, error) { return st.sql, nil }
func (st *InsertInto) TemplateParams() map[string]any {
	out := make(map[string]any, len(st.params))
	for k, v := range st.params {
		out[k] = v
	}
	return out
}
func (st *InsertInto) Table() *schema.Table { return st.table }
