package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossql/crossql/expr"
)

func TestCountStarRendersBareAsterisk(t *testing.T) {
	f := expr.Count(nil)
	assert.Equal(t, "COUNT(*)", f.SQL())
	assert.Equal(t, "FUNCTION.COUNT", f.Alias())
}

func TestCountColumnRendersQualifiedAlias(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	f := expr.Count(col)
	assert.Equal(t, "COUNT(words.id)", f.SQL())
	assert.Equal(t, "FUNCTION.COUNT.COLUMN.words.id", f.Alias())
}

func TestNewFunctionRejectsNilColumnForNonCount(t *testing.T) {
	_, err := expr.NewFunction(expr.FuncMax, nil)
	assert.Error(t, err)
}

func TestFunctionConvertersProxyUnderlyingColumn(t *testing.T) {
	col := &fakeColumn{fqn: "words.id"}
	f, err := expr.Max(col)
	require.NoError(t, err)

	out, err := f.ConvertToDatabase(5)
	require.NoError(t, err)
	assert.Equal(t, 5, out)
}
