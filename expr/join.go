package expr

import "fmt"

// JoinType is the closed set of SQL join kinds from spec.md §3.
type JoinType string

const (
	CrossJoin JoinType = "CROSS"
	FullJoin  JoinType = "FULL"
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
)

// TableRef is the surface a join target needs. schema.Table implements it.
type TableRef interface {
	FullyQualifiedName() string
}

// ColumnPair is one (left, right) equality (or other operator) pairing
// used to build a join's ON condition.
type ColumnPair struct {
	Left  Operand
	Right Operand
}

// Join is a target table, a join type, and a Condition built from one or
// more column pairs (spec.md §4.4). CROSS joins carry no condition.
type Join struct {
	target TableRef
	typ    JoinType
	cond   *Condition
}

// NewJoin builds a join over one or more column pairs, combined with AND,
// using op as the comparison operator (defaults to Equal when op == "").
// joinType defaults to InnerJoin when empty. pairs must be non-empty
// unless typ is CrossJoin.
func NewJoin(target TableRef, typ JoinType, op Operator, pairs ...ColumnPair) (*Join, error) {
	if typ == "" {
		typ = InnerJoin
	}
	if op == "" {
		op = Equal
	}
	if typ == CrossJoin {
		return &Join{target: target, typ: typ}, nil
	}
	if len(pairs) == 0 {
		return nil, newBuildError(WrongItemType, "join requires at least one column pair unless CROSS")
	}

	var cond *Condition
	for _, pair := range pairs {
		c, err := NewCondition(pair.Left, op, pair.Right)
		if err != nil {
			return nil, err
		}
		if cond == nil {
			cond = c
		} else {
			cond = And(cond, c)
		}
	}
	return &Join{target: target, typ: typ, cond: cond}, nil
}

// SQL renders "<TYPE> JOIN <fqn> ON <condition>", or bare "CROSS JOIN <fqn>"
// for cross joins.
func (j *Join) SQL() string {
	if j.typ == CrossJoin {
		return fmt.Sprintf("CROSS JOIN %s", j.target.FullyQualifiedName())
	}
	return fmt.Sprintf("%s JOIN %s ON %s", j.typ, j.target.FullyQualifiedName(), j.cond.SQL())
}

// Params returns the join condition's bound parameters (empty for CROSS).
func (j *Join) Params() map[string]any {
	if j.cond == nil {
		return map[string]any{}
	}
	return j.cond.Params()
}

// Target returns the join's target table reference.
func (j *Join) Target() TableRef { return j.target }
