package expr

// Filter constructors are thin, pre-packaged Conditions, per spec.md §4.2
// and original_source/sqldatabase/sqlcolumnfilter.py. Column exposes the
// same surface as methods (col.IsEqual(v), col.IsBetween(lo, hi), ...) that
// simply delegate here.

func IsEqual(left Operand, value any) (*Condition, error) {
	return NewCondition(left, Equal, value)
}

func IsNotEqual(left Operand, value any) (*Condition, error) {
	return NewCondition(left, NotEqual, value)
}

func IsGreaterThan(left Operand, value any) (*Condition, error) {
	return NewCondition(left, GreaterThan, value)
}

func IsGreaterThanOrEqual(left Operand, value any) (*Condition, error) {
	return NewCondition(left, GreaterThanOrEqual, value)
}

func IsLessThan(left Operand, value any) (*Condition, error) {
	return NewCondition(left, LessThan, value)
}

func IsLessThanOrEqual(left Operand, value any) (*Condition, error) {
	return NewCondition(left, LessThanOrEqual, value)
}

func IsLike(left Operand, pattern any) (*Condition, error) {
	return NewCondition(left, Like, pattern)
}

func IsNotLike(left Operand, pattern any) (*Condition, error) {
	return NewCondition(left, NotLike, pattern)
}

func IsIn(left Operand, values ...any) (*Condition, error) {
	return NewCondition(left, In, values...)
}

func IsNotIn(left Operand, values ...any) (*Condition, error) {
	return NewCondition(left, NotIn, values...)
}

func IsBetween(left Operand, lower, upper any) (*Condition, error) {
	return NewCondition(left, Between, lower, upper)
}

func IsNotBetween(left Operand, lower, upper any) (*Condition, error) {
	return NewCondition(left, NotBetween, lower, upper)
}

func IsNullFilter(left Operand) (*Condition, error) {
	return NewCondition(left, IsNull)
}

func IsNotNullFilter(left Operand) (*Condition, error) {
	return NewCondition(left, IsNotNull)
}
