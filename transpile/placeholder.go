package transpile

import (
	"fmt"
	"strings"

	"github.com/crossql/crossql/dialect"
)

// renderPlaceholders walks sql's tokens and reshapes every ":name"
// placeholder into d's native convention, per spec.md §4.6 Phase 5. For
// PlaceholderNamed (SQLite) the text is left untouched and named is
// returned with every bound value; for PlaceholderQuestion/PlaceholderDollar
// the placeholders are replaced in left-to-right order and positional
// carries the corresponding values in the same order.
func renderPlaceholders(toks []token, style dialect.Placeholder, params map[string]any) (sql string, positional []any, named map[string]any, err error) {
	var b strings.Builder
	dollarN := 0
	if style == dialect.PlaceholderNamed {
		named = make(map[string]any, len(params))
	}

	for _, t := range toks {
		if t.kind != tokPlaceholder {
			b.WriteString(t.text)
			continue
		}
		name := strings.TrimPrefix(t.text, ":")
		val, ok := params[name]
		if !ok {
			return "", nil, nil, newError(MalformedTemplate, "unbound placeholder :%s", name)
		}
		switch style {
		case dialect.PlaceholderNamed:
			b.WriteString(t.text)
			named[name] = val
		case dialect.PlaceholderQuestion:
			b.WriteString("?")
			positional = append(positional, val)
		case dialect.PlaceholderDollar:
			dollarN++
			fmt.Fprintf(&b, "$%d", dollarN)
			positional = append(positional, val)
		}
	}
	return b.String(), positional, named, nil
}
