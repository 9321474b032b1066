package dbconn

import "database/sql"

// Args converts a transpile.Result's Named/Positional parameter value
// into the []any a database/sql driver call expects: a map becomes
// sql.Named entries (SQLite's convention), a slice passes straight
// through (every other dialect's positional convention).
func Args(params any) []any {
	switch p := params.(type) {
	case map[string]any:
		out := make([]any, 0, len(p))
		for k, v := range p {
			out = append(out, sql.Named(k, v))
		}
		return out
	case []any:
		return p
	case nil:
		return nil
	default:
		return []any{p}
	}
}
