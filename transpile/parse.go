package transpile

import "sync"

// parseCache memoizes scan(sql) across the process, keyed by the SQL text
// it is given (the template after its RETURNING clause is rewritten). Bulk-insert rebinding (statement.InsertInto.Rebind)
// re-executes the same template with new parameter values many times, so
// caching the token scan avoids re-tokenizing unchanged SQL on every
// execution (spec.md §5).
var parseCache sync.Map // string -> []token

func tokensFor(sql string) []token {
	if cached, ok := parseCache.Load(sql); ok {
		return cached.([]token)
	}
	toks := scan(sql)
	parseCache.Store(sql, toks)
	return toks
}
