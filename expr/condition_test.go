package expr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/expr"
)

type fakeColumn struct {
	fqn string
}

func (c *fakeColumn) SQL() string                           { return c.fqn }
func (c *fakeColumn) FullyQualifiedName() string             { return c.fqn }
func (c *fakeColumn) Alias() string                          { return "COLUMN." + c.fqn }
func (c *fakeColumn) ConvertToDatabase(v any) (any, error)   { return v, nil }
func (c *fakeColumn) ConvertFromDatabase(v any) (any, error) { return v, nil }

func TestGreaterThanOrEqualRendersCorrectOperator(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	cond, err := expr.IsGreaterThanOrEqual(col, 5)
	require.NoError(t, err)

	sql := cond.SQL()
	assert.Contains(t, sql, ">=")
	assert.NotContains(t, sql, "<=")
}

func TestBetweenRendersBothBounds(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	cond, err := expr.IsBetween(col, 1, 10)
	require.NoError(t, err)

	sql := cond.SQL()
	assert.Contains(t, sql, "BETWEEN")
	assert.Contains(t, sql, "AND")
	assert.Len(t, cond.Params(), 2)
}

func TestBetweenWithEqualBoundsStillBindsTwoParams(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	cond, err := expr.IsBetween(col, 5, 5)
	require.NoError(t, err)
	assert.Len(t, cond.Params(), 2)
}

func TestIsInRejectsZeroValues(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	_, err := expr.IsIn(col)
	assert.Error(t, err)
}

func TestIsNullCarriesNoParams(t *testing.T) {
	col := &fakeColumn{fqn: "words.pronunciation"}
	cond, err := expr.IsNullFilter(col)
	require.NoError(t, err)

	assert.Empty(t, cond.Params())
	assert.True(t, strings.HasSuffix(cond.SQL(), "IS NULL"))
}

func TestAndUnionsParams(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	left, err := expr.IsEqual(col, 1)
	require.NoError(t, err)
	right, err := expr.IsEqual(col, 2)
	require.NoError(t, err)

	combined := expr.And(left, right)
	assert.Len(t, combined.Params(), 2)
	assert.True(t, combined.IsCompound())
}

// subSelect is a minimal expr.SubSelect stand-in, mirroring how
// statement.Select satisfies the interface without importing it (avoiding
// the expr <-> statement import cycle in this test too).
type subSelect struct {
	sql      string
	params   map[string]any
	colCount int
}

func (s *subSelect) SQL() string                         { return "(" + s.sql + ")" }
func (s *subSelect) ConvertToDatabase(v any) (any, error) { return v, nil }
func (s *subSelect) TemplateSQL() (string, error)         { return s.sql, nil }
func (s *subSelect) TemplateParams() map[string]any       { return s.params }
func (s *subSelect) ProjectedColumnCount() int            { return s.colCount }

func TestSubSelectOnRightHandSideMustProjectExactlyOneColumn(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	bad := &subSelect{sql: "SELECT a, b FROM t", params: map[string]any{}, colCount: 2}
	_, err := expr.IsEqual(col, bad)
	assert.Error(t, err)

	good := &subSelect{sql: "SELECT a FROM t WHERE x = :p", params: map[string]any{"p": 7}, colCount: 1}
	cond, err := expr.IsEqual(col, good)
	require.NoError(t, err)

	assert.Contains(t, cond.Params(), "p")
	assert.Contains(t, cond.SQL(), "(SELECT a FROM t WHERE x = :p)")
}

func TestSubSelectAsLeftOperandMergesItsOwnParams(t *testing.T) {
	left := &subSelect{sql: "SELECT COUNT(*) FROM t WHERE x = :q", params: map[string]any{"q": 3}, colCount: 1}
	cond, err := expr.NewCondition(left, expr.GreaterThan, 0)
	require.NoError(t, err)
	assert.Contains(t, cond.Params(), "q")
}

func TestSubSelectAsLeftOperandRejectsMultiColumnProjection(t *testing.T) {
	left := &subSelect{sql: "SELECT a, b FROM t", params: map[string]any{}, colCount: 2}
	_, err := expr.NewCondition(left, expr.GreaterThan, 0)
	assert.Error(t, err)
}
