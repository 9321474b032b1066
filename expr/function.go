package expr

import "fmt"

// FuncName is the closed set of aggregate functions from spec.md §3.3.
type FuncName string

const (
	FuncCount FuncName = "COUNT"
	FuncMin   FuncName = "MIN"
	FuncMax   FuncName = "MAX"
	FuncSum   FuncName = "SUM"
	FuncAvg   FuncName = "AVG"
)

// ColumnOperand is the surface a column needs to participate as an
// aggregate function's argument and as a Record/alias key. schema.Column
// implements this.
type ColumnOperand interface {
	Operand
	FullyQualifiedName() string
	Alias() string
	ConvertFromDatabase(value any) (any, error)
}

// Function is an AggregateFunction node: COUNT(*) / COUNT(col) / MIN(col) /
// MAX(col) / SUM(col) / AVG(col). Functions are handled as *Function, so Go
// equality is pointer identity; a Record keys its entries by Alias()
// instead, so two separately built MAX(users.age) values address the same
// Record entry.
type Function struct {
	name   FuncName
	column ColumnOperand // nil only for COUNT(*)
}

// NewFunction builds an aggregate function. column must be nil only when
// name is FuncCount (COUNT(*)); every other function requires a column.
func NewFunction(name FuncName, column ColumnOperand) (*Function, error) {
	if column == nil && name != FuncCount {
		return nil, newBuildError(WrongItemType, "aggregate function %s requires a column", name)
	}
	return &Function{name: name, column: column}, nil
}

// Count builds COUNT(*) when column is nil, or COUNT(column) otherwise.
func Count(column ColumnOperand) *Function {
	f, _ := NewFunction(FuncCount, column)
	return f
}

func Min(column ColumnOperand) (*Function, error) { return NewFunction(FuncMin, column) }
func Max(column ColumnOperand) (*Function, error) { return NewFunction(FuncMax, column) }
func Sum(column ColumnOperand) (*Function, error) { return NewFunction(FuncSum, column) }
func Avg(column ColumnOperand) (*Function, error) { return NewFunction(FuncAvg, column) }

// SQL renders the function's fully qualified SQL form, e.g. "COUNT(*)" or
// "MAX(users.age)".
func (f *Function) SQL() string {
	if f.column == nil {
		return fmt.Sprintf("%s(*)", f.name)
	}
	return fmt.Sprintf("%s(%s)", f.name, f.column.FullyQualifiedName())
}

// FullyQualifiedName returns the same text as SQL(); kept distinct so
// Function satisfies NameSource/ColumnOperand alongside schema.Column.
func (f *Function) FullyQualifiedName() string { return f.SQL() }

// Alias returns the function's canonical projection alias, per spec.md
// §4.7: "FUNCTION." fname ["." "COLUMN." fqn].
func (f *Function) Alias() string {
	if f.column == nil {
		return fmt.Sprintf("FUNCTION.%s", f.name)
	}
	return fmt.Sprintf("FUNCTION.%s.COLUMN.%s", f.name, f.column.FullyQualifiedName())
}

// ConvertToDatabase proxies the underlying column's converter chain, per
// spec.md §4.3 ("the function proxies its column's converters").
func (f *Function) ConvertToDatabase(value any) (any, error) {
	if f.column == nil {
		return value, nil
	}
	return f.column.ConvertToDatabase(value)
}

// ConvertFromDatabase proxies the underlying column's from-database
// converter, used during result decoding (spec.md §4.3).
func (f *Function) ConvertFromDatabase(value any) (any, error) {
	if f.column == nil {
		return value, nil
	}
	return f.column.ConvertFromDatabase(value)
}

// Column returns the underlying column, or nil for COUNT(*).
func (f *Function) Column() ColumnOperand { return f.column }

// Name returns the aggregate function name.
func (f *Function) Name() FuncName { return f.name }
