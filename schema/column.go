// Package schema implements the typed schema descriptors (Column, Table,
// Database) and the back-reference graph invariants described in spec.md
// §3-4.1. Grounded on the shape of the teacher's schema/ast.go (Column,
// Table, Index types) and on original_source/sqldatabase/sqlcolumn.py's
// deep-copy/foreign-key-repair semantics.
package schema

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/sqltype"
)

// Column is a named, typed attribute of a Table. Table and Database
// back-references are set once by Database construction (see database.go)
// and are never copied by value — Clone repairs them explicitly.
type Column struct {
	Name          string
	DataType      *sqltype.DataType
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	Unique        bool
	Default       any
	// Reference is the foreign-key target, or nil.
	Reference *Column
	// ForeignKeys is the reverse edge: every column whose Reference points
	// at this one. Maintained by Database binding and Clone.
	ForeignKeys []*Column
	// ValueSet restricts this column to a discrete set of allowed values,
	// or nil for no restriction (original_source's `values` Enum param).
	ValueSet []any

	ToDatabaseFn   sqltype.Converter
	FromDatabaseFn sqltype.Converter

	// Table is set by Database construction; nil before binding.
	Table *Table
}

// FullyQualifiedName renders the owning table's FullyQualifiedName
// followed by ".column", e.g. "db.schema.table.column" on SQL Server and
// "table.column" for an unattached SQLite table. An unbound column renders
// its bare name.
func (c *Column) FullyQualifiedName() string {
	if c.Table == nil {
		return c.Name
	}
	return c.Table.FullyQualifiedName() + "." + c.Name
}

// Alias is the result-row projection alias used by record decoding,
// spec.md §4.7: "COLUMN." fqn.
func (c *Column) Alias() string {
	return "COLUMN." + c.FullyQualifiedName()
}

// SQL satisfies expr.Operand: a column renders as its fully qualified name.
func (c *Column) SQL() string {
	return c.FullyQualifiedName()
}

// ConvertToDatabase validates against ValueSet (if any) and applies the
// user converter followed by the data type's converter (spec.md §3
// Record: "applies column's user converter, then data type's converter").
func (c *Column) ConvertToDatabase(value any) (any, error) {
	if len(c.ValueSet) > 0 && value != nil {
		ok := false
		for _, allowed := range c.ValueSet {
			if allowed == value {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("schema: value %v not in allowed set for column %s", value, c.FullyQualifiedName())
		}
	}
	if value == nil {
		return nil, nil
	}
	if c.DataType == nil {
		return c.applyUser(value)
	}
	return c.DataType.ToDatabaseChain(value, sqltype.Converter(c.ToDatabaseFn))
}

func (c *Column) applyUser(value any) (any, error) {
	if c.ToDatabaseFn == nil {
		return value, nil
	}
	return c.ToDatabaseFn(value)
}

// ConvertFromDatabase reverses ConvertToDatabase: data type converter, then
// user converter (spec.md §3: "inverse order").
func (c *Column) ConvertFromDatabase(value any) (any, error) {
	if c.DataType == nil {
		if c.FromDatabaseFn == nil {
			return value, nil
		}
		return c.FromDatabaseFn(value)
	}
	return c.DataType.FromDatabaseChain(value, sqltype.Converter(c.FromDatabaseFn))
}

// Clone deep-copies c for a new owning table, repairing the foreign-key
// back-reference graph as specified in spec.md §4.1 point 3:
//
//   - any column that referenced c (c.ForeignKeys) now references the
//     clone, and is removed from c's own (now stale) list;
//   - if c itself references another column, the clone replaces c in that
//     target's ForeignKeys list.
func (c *Column) Clone(newTable *Table) *Column {
	clone := &Column{
		Name:           c.Name,
		DataType:       c.DataType,
		PrimaryKey:     c.PrimaryKey,
		AutoIncrement:  c.AutoIncrement,
		NotNull:        c.NotNull,
		Unique:         c.Unique,
		Default:        c.Default,
		Reference:      c.Reference,
		ValueSet:       append([]any(nil), c.ValueSet...),
		ToDatabaseFn:   c.ToDatabaseFn,
		FromDatabaseFn: c.FromDatabaseFn,
		Table:          newTable,
	}
	if c.DataType != nil && !c.DataType.IsParameterized() {
		clone.DataType = c.DataType.Clone()
	}

	// Repair the reverse edge: children that pointed at c now point at clone.
	clone.ForeignKeys = c.ForeignKeys
	for _, fk := range clone.ForeignKeys {
		fk.Reference = clone
	}
	c.ForeignKeys = nil

	// If c is itself a foreign key, re-register the clone on its target
	// and drop c from that target's list.
	if clone.Reference != nil {
		removeColumn(&clone.Reference.ForeignKeys, c)
		clone.Reference.ForeignKeys = append(clone.Reference.ForeignKeys, clone)
	}
	return clone
}

func removeColumn(list *[]*Column, target *Column) {
	out := (*list)[:0]
	for _, col := range *list {
		if col != target {
			out = append(out, col)
		}
	}
	*list = out
}

// Filter factory methods (spec.md §4.2 / original_source's
// SqlColumnFilters): thin pre-packaged Conditions over this column.

func (c *Column) IsEqual(value any) (*expr.Condition, error)    { return expr.IsEqual(c, value) }
func (c *Column) IsNotEqual(value any) (*expr.Condition, error) { return expr.IsNotEqual(c, value) }
func (c *Column) IsGreaterThan(value any) (*expr.Condition, error) {
	return expr.IsGreaterThan(c, value)
}
func (c *Column) IsGreaterThanOrEqual(value any) (*expr.Condition, error) {
	return expr.IsGreaterThanOrEqual(c, value)
}
func (c *Column) IsLessThan(value any) (*expr.Condition, error) { return expr.IsLessThan(c, value) }
func (c *Column) IsLessThanOrEqual(value any) (*expr.Condition, error) {
	return expr.IsLessThanOrEqual(c, value)
}
func (c *Column) IsLike(pattern any) (*expr.Condition, error)    { return expr.IsLike(c, pattern) }
func (c *Column) IsNotLike(pattern any) (*expr.Condition, error) { return expr.IsNotLike(c, pattern) }
func (c *Column) IsIn(values ...any) (*expr.Condition, error)    { return expr.IsIn(c, values...) }
func (c *Column) IsNotIn(values ...any) (*expr.Condition, error) { return expr.IsNotIn(c, values...) }
func (c *Column) IsBetween(lower, upper any) (*expr.Condition, error) {
	return expr.IsBetween(c, lower, upper)
}
func (c *Column) IsNotBetween(lower, upper any) (*expr.Condition, error) {
	return expr.IsNotBetween(c, lower, upper)
}
func (c *Column) IsNull() (*expr.Condition, error)    { return expr.IsNullFilter(c) }
func (c *Column) IsNotNull() (*expr.Condition, error) { return expr.IsNotNullFilter(c) }

// ColumnDefinitionSQL renders this column's definition clause for CREATE
// TABLE, dialect-aware for the data type only (per spec.md §3); the rest
// of the clause (NOT NULL, UNIQUE, AUTOINCREMENT, DEFAULT) uses the same
// spelling for every dialect, and Transpile does not rewrite DDL.
func (c *Column) ColumnDefinitionSQL(dialectName string) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(c.DataType.Render(dialectName))
	if c.NotNull || c.PrimaryKey {
		b.WriteString(" NOT NULL")
	}
	if c.Unique && !c.PrimaryKey {
		b.WriteString(" UNIQUE")
	}
	if c.AutoIncrement {
		b.WriteString(" AUTOINCREMENT")
	}
	if c.Default != nil {
		fmt.Fprintf(&b, " DEFAULT %s", sqlLiteral(c.Default))
	}
	return b.String()
}

func sqlLiteral(value any) string {
	switch v := value.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}
