package record

import (
	"fmt"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/schema"
)

// resolveColumn finds the live schema.Column named by a parsed alias. An
// empty database name or db's own name selects db; any other name selects
// the sibling attached under that name (spec.md §4.7: "resolve the
// corresponding column (and database, possibly an attached one)").
func resolveColumn(db *schema.Database, p *ParsedAlias) (*schema.Column, error) {
	target := db
	if p.DatabaseName != "" && p.DatabaseName != db.Name {
		other, ok := db.Attached(p.DatabaseName)
		if !ok {
			return nil, fmt.Errorf("record: database %q is not %q and isn't attached", p.DatabaseName, db.Name)
		}
		target = other
	}
	table, ok := target.TableByName(p.TableName)
	if !ok {
		return nil, fmt.Errorf("record: unknown table %q in database %q", p.TableName, target.Name)
	}
	col, ok := table.ColumnByName(p.ColumnName)
	if !ok {
		return nil, fmt.Errorf("record: unknown column %q in table %q", p.ColumnName, table.Name)
	}
	return col, nil
}

// resolveKey resolves a parsed alias into a live Column or Function key
// against db's schema.
func resolveKey(db *schema.Database, alias string) (Key, error) {
	p, err := ParseAlias(alias)
	if err != nil {
		return nil, err
	}
	switch p.Kind {
	case AliasColumn:
		return resolveColumn(db, p)
	case AliasFunctionOnly:
		if expr.FuncName(p.FuncName) != expr.FuncCount {
			return nil, fmt.Errorf("record: bare function alias only valid for COUNT(*), got %q", p.FuncName)
		}
		return expr.Count(nil), nil
	case AliasFunctionColumn:
		col, err := resolveColumn(db, p)
		if err != nil {
			return nil, err
		}
		return expr.NewFunction(expr.FuncName(p.FuncName), col)
	default:
		return nil, fmt.Errorf("record: unrecognized alias %q", alias)
	}
}

// DecodeRow builds a Record from one cursor row: aliases (in projection
// order) paired with their scalar values, each resolved against db's live
// schema and passed through the key's from-database converter chain
// (spec.md §4.7).
func DecodeRow(db *schema.Database, aliases []string, values []any) (*Record, error) {
	if len(aliases) != len(values) {
		return nil, fmt.Errorf("record: %d aliases but %d values", len(aliases), len(values))
	}
	rec := New()
	for i, alias := range aliases {
		key, err := resolveKey(db, alias)
		if err != nil {
			return nil, err
		}
		converted, err := key.ConvertFromDatabase(values[i])
		if err != nil {
			return nil, fmt.Errorf("record: decoding %q: %w", alias, err)
		}
		rec.Set(key, converted)
	}
	return rec, nil
}

// DecodeRows decodes every row a cursor yields into Records.
func DecodeRows(db *schema.Database, aliases []string, rows [][]any) ([]*Record, error) {
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec, err := DecodeRow(db, aliases, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
