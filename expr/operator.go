package expr

// Operator is a comparison or logical SQL operator. The source hierarchy
// (original_source/sqldatabase/sqloperator.py) models operators as a
// subclass-per-operator enum; per spec.md §9 ("the operator is data, not
// type") we collapse that to one closed string-backed type.
type Operator string

const (
	Equal              Operator = "="
	NotEqual           Operator = "!="
	GreaterThan        Operator = ">"
	GreaterThanOrEqual Operator = ">=" // the source's matching copies emit "<=" here; spec.md §9 calls that a bug.
	LessThan           Operator = "<"
	LessThanOrEqual    Operator = "<="
	Like               Operator = "LIKE"
	NotLike            Operator = "NOT LIKE"
	In                 Operator = "IN"
	NotIn              Operator = "NOT IN"
	Between            Operator = "BETWEEN"
	NotBetween         Operator = "NOT BETWEEN"
	IsNull             Operator = "IS NULL"
	IsNotNull          Operator = "IS NOT NULL"

	and Operator = "AND"
	or  Operator = "OR"
)

// valueCount returns the exact number of values the operator requires, or
// -1 if it accepts one-or-more (IN/NOT IN).
func (op Operator) valueCount() int {
	switch op {
	case IsNull, IsNotNull:
		return 0
	case Between, NotBetween:
		return 2
	case In, NotIn:
		return -1
	default:
		return 1
	}
}

// validateValueCount enforces spec.md §3's "Value-count invariant per
// operator".
func validateValueCount(op Operator, n int) error {
	want := op.valueCount()
	switch {
	case want == -1 && n < 1:
		return newBuildError(ValueCount, "operator %s requires at least 1 value, got %d", op, n)
	case want >= 0 && n != want:
		return newBuildError(ValueCount, "operator %s requires exactly %d value(s), got %d", op, want, n)
	}
	return nil
}
