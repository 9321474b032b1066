// Package record implements Record: an ordered mapping from schema
// objects (Column or AggregateFunction) to values, per spec.md §3 and
// §4.7. Grounded on original_source/sqldatabase/sqlrecord.py's ordered
// dict semantics and the teacher's table-driven fixture style.
package record

import (
	"github.com/crossql/crossql/expr"
)

// Key is whatever a Record can be keyed by: schema.Column or expr.Function,
// both of which implement expr.ColumnOperand.
type Key = expr.ColumnOperand

// Record is an ordered key→value mapping. The zero value is not usable;
// construct with New.
type Record struct {
	keys   []Key
	values []any
	index  map[string]int // Alias() -> position in keys/values
}

// New returns an empty Record.
func New() *Record {
	return &Record{index: map[string]int{}}
}

// Set assigns value to key, appending a new ordered entry or overwriting
// an existing one in place.
func (r *Record) Set(key Key, value any) {
	if i, ok := r.index[key.Alias()]; ok {
		r.values[i] = value
		return
	}
	r.index[key.Alias()] = len(r.keys)
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

// Get returns the value for key, if present.
func (r *Record) Get(key Key) (any, bool) {
	i, ok := r.index[key.Alias()]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Keys returns the record's keys in insertion order.
func (r *Record) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of entries.
func (r *Record) Len() int { return len(r.keys) }

// Binding is one column's contribution to an INSERT/UPDATE parameter set:
// a freshly generated bind-parameter name and its converted value.
type Binding struct {
	Key       Key
	ParamName string
	Value     any
}

// ToDatabaseParameters generates a fresh parameter name per entry (via the
// same salted-name scheme expr uses) and converts each value through the
// key's to-database converter chain, per spec.md §3's
// "generation of a parameter-name map for inserts/updates".
func (r *Record) ToDatabaseParameters() ([]Binding, error) {
	out := make([]Binding, 0, len(r.keys))
	for i, k := range r.keys {
		converted, err := k.ConvertToDatabase(r.values[i])
		if err != nil {
			return nil, err
		}
		out = append(out, Binding{
			Key:       k,
			ParamName: expr.NewParamName(k),
			Value:     converted,
		})
	}
	return out, nil
}
