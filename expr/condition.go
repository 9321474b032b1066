package expr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Operand is anything that can appear on the left-hand side of a
// Condition: a column, an aggregate Function, or (via SubSelect below) a
// scalar sub-select. schema.Column implements this structurally.
type Operand interface {
	// SQL renders the operand's SQL text (a fully qualified column name or
	// a function call like COUNT(*)).
	SQL() string
	// ConvertToDatabase applies this operand's to-database converter chain
	// to a literal value being compared against it (spec.md §4.2).
	ConvertToDatabase(value any) (any, error)
}

// NameSource supplies the seed text for generated parameter names
// (spec.md §4.2: "derived from the left operand's fqn"). Columns and
// Functions implement this via their fully qualified name.
type NameSource interface {
	FullyQualifiedName() string
}

// SubSelect is satisfied by statement.Select, allowing a Select to be used
// as the right-hand side of a Condition without expr importing package
// statement (which itself imports expr).
type SubSelect interface {
	Operand
	// TemplateSQL returns the sub-select's canonical (unparameterized
	// placeholder names, dialect-agnostic) SQL text.
	TemplateSQL() (string, error)
	// TemplateParams returns the sub-select's own accumulated named
	// parameters, merged into the outer Condition's map.
	TemplateParams() map[string]any
	// ProjectedColumnCount is the number of items the sub-select projects;
	// used to enforce spec.md §8's "sub-select on the RHS of a scalar
	// operator must project exactly one column".
	ProjectedColumnCount() int
}

// Condition is a tree of comparisons joined by AND/OR, per spec.md §3.
type Condition struct {
	// leaf fields
	left   Operand
	op     Operator
	tokens []string // rendered SQL tokens for each value (param name, column fqn, or "(sub-sql)")
	params map[string]any

	// compound fields (left/right are themselves *Condition; logical is and/or)
	compoundLeft  *Condition
	compoundRight *Condition
	logical       Operator
}

// NewParamName generates a fresh, collision-resistant parameter name from
// a NameSource's fully qualified name, salted with 8 hex chars of a UUID4
// (spec.md §5: "salts with a short random token"). Exported so package
// record can name INSERT/UPDATE bind parameters with the same scheme.
func NewParamName(ns NameSource) string {
	seed := ns.FullyQualifiedName()
	seed = strings.NewReplacer(".", "_", "(", "_", ")", "_", "*", "star").Replace(seed)
	return fmt.Sprintf("%s_%s", seed, uuid.New().String()[:8])
}

func paramNameFor(left Operand) string {
	if ns, ok := left.(NameSource); ok {
		return NewParamName(ns)
	}
	return fmt.Sprintf("value_%s", uuid.New().String()[:8])
}

// NewCondition builds a leaf comparison `left op values...`. Each value is
// classified as another Operand (rendered as its SQL text), a SubSelect
// (rendered as "(sub-sql)", its params merged in), or a literal (bound to a
// freshly named parameter after passing through left's to-database
// converter chain).
func NewCondition(left Operand, op Operator, values ...any) (*Condition, error) {
	if err := validateValueCount(op, len(values)); err != nil {
		return nil, err
	}

	c := &Condition{left: left, op: op, params: map[string]any{}}
	if ss, ok := left.(SubSelect); ok {
		if ss.ProjectedColumnCount() != 1 {
			return nil, newBuildError(SubSelectColumnCount,
				"sub-select used as a condition operand must project exactly 1 column, got %d",
				ss.ProjectedColumnCount())
		}
		for k, p := range ss.TemplateParams() {
			c.params[k] = p
		}
	}
	for _, v := range values {
		tok, err := c.classify(left, v)
		if err != nil {
			return nil, err
		}
		c.tokens = append(c.tokens, tok)
	}
	return c, nil
}

func (c *Condition) classify(left Operand, v any) (string, error) {
	switch val := v.(type) {
	case SubSelect:
		if val.ProjectedColumnCount() != 1 {
			return "", newBuildError(SubSelectColumnCount,
				"sub-select used in a scalar comparison must project exactly 1 column, got %d",
				val.ProjectedColumnCount())
		}
		sql, err := val.TemplateSQL()
		if err != nil {
			return "", err
		}
		for k, p := range val.TemplateParams() {
			c.params[k] = p
		}
		return "(" + sql + ")", nil
	case Operand:
		return val.SQL(), nil
	default:
		converted, err := left.ConvertToDatabase(v)
		if err != nil {
			return "", err
		}
		name := paramNameFor(left)
		c.params[name] = converted
		return ":" + name, nil
	}
}

// And combines a and b with a logical AND, per spec.md §3.
func And(a, b *Condition) *Condition {
	return &Condition{compoundLeft: a, compoundRight: b, logical: and}
}

// Or combines a and b with a logical OR.
func Or(a, b *Condition) *Condition {
	return &Condition{compoundLeft: a, compoundRight: b, logical: or}
}

// IsCompound reports whether c is an AND/OR node rather than a leaf.
func (c *Condition) IsCompound() bool {
	return c.logical == and || c.logical == or
}

// SQL renders the condition to canonical (SQLite-dialect) SQL text, with
// named `:param` placeholders for any bound literal values.
func (c *Condition) SQL() string {
	if c.IsCompound() {
		return fmt.Sprintf("(%s %s %s)", c.compoundLeft.SQL(), c.logical, c.compoundRight.SQL())
	}
	switch c.op {
	case IsNull, IsNotNull:
		return fmt.Sprintf("%s %s", c.left.SQL(), c.op)
	case Between, NotBetween:
		return fmt.Sprintf("%s %s %s AND %s", c.left.SQL(), c.op, c.tokens[0], c.tokens[1])
	case In, NotIn:
		return fmt.Sprintf("%s %s (%s)", c.left.SQL(), c.op, strings.Join(c.tokens, ", "))
	default:
		return fmt.Sprintf("%s %s %s", c.left.SQL(), c.op, c.tokens[0])
	}
}

// Params returns the named parameter map accumulated across this
// condition's whole tree (union of both branches for compound nodes).
func (c *Condition) Params() map[string]any {
	if c.IsCompound() {
		merged := make(map[string]any, len(c.compoundLeft.Params())+len(c.compoundRight.Params()))
		for k, v := range c.compoundLeft.Params() {
			merged[k] = v
		}
		for k, v := range c.compoundRight.Params() {
			merged[k] = v
		}
		return merged
	}
	out := make(map[string]any, len(c.params))
	for k, v := range c.params {
		out[k] = v
	}
	return out
}
