package record

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crossql/crossql/expr"
	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/util"
)

// ToJSON exports r using the alias grammar as keys (spec.md §4.7): binary
// values are base64-encoded and date/time values use ISO-8601, both of
// which are encoding/json's native behavior for []byte and time.Time, so
// this is a direct map literal rather than bespoke per-value encoding.
func (r *Record) ToJSON() ([]byte, error) {
	out := make(map[string]any, len(r.keys))
	for i, k := range r.keys {
		out[k.Alias()] = r.values[i]
	}
	return json.Marshal(out)
}

// FromJSON imports a Record previously produced by ToJSON, resolving each
// alias against db's live schema (the same resolution DecodeRow uses) and
// reversing the base64/ISO-8601 transforms according to each key's
// underlying data type.
func FromJSON(db *schema.Database, data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("record: decoding JSON: %w", err)
	}

	rec := New()
	for alias, msg := range util.CanonicalMapIter(raw) {
		key, err := resolveKey(db, alias)
		if err != nil {
			return nil, err
		}

		var null bool
		if string(msg) == "null" {
			null = true
		}

		switch dataTypeName(key) {
		case "BLOB":
			if null {
				rec.Set(key, nil)
				continue
			}
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				return nil, fmt.Errorf("record: decoding %q as base64: %w", alias, err)
			}
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, fmt.Errorf("record: decoding %q as base64: %w", alias, err)
			}
			rec.Set(key, b)
		case "DATE", "DATETIME", "TIMESTAMP":
			if null {
				rec.Set(key, nil)
				continue
			}
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				return nil, fmt.Errorf("record: decoding %q as ISO-8601: %w", alias, err)
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				t, err = time.Parse("2006-01-02", s)
				if err != nil {
					return nil, fmt.Errorf("record: decoding %q as ISO-8601: %w", alias, err)
				}
			}
			rec.Set(key, t)
		default:
			var v any
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, fmt.Errorf("record: decoding %q: %w", alias, err)
			}
			rec.Set(key, v)
		}
	}
	return rec, nil
}

// dataTypeName returns the underlying data type name for a Record key,
// proxying through Function to its column the same way conversion does.
func dataTypeName(key Key) string {
	switch k := key.(type) {
	case *schema.Column:
		if k.DataType == nil {
			return ""
		}
		return k.DataType.Name
	case *expr.Function:
		col := k.Column()
		if col == nil {
			return ""
		}
		if sc, ok := col.(*schema.Column); ok && sc.DataType != nil {
			return sc.DataType.Name
		}
	}
	return ""
}
