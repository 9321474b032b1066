// Package sqltype implements the DataType descriptor: a named SQL type
// carrying a host-language representative type, optional to/from-database
// value converters, and a dialect-sensitive SQL rendering. Grounded on the
// teacher's generateDataType/normalizeDataType (schema/generator.go) and on
// original_source/sqldatabase/sqldatatype.py's adapter/converter pair.
package sqltype

import (
	"fmt"
	"reflect"
)

// Converter transforms a Go value to or from its database representation.
type Converter func(value any) (any, error)

// DataType is a named SQL type descriptor. Instances are created once from
// a base catalogue (see Integer, Text and the other constructors in
// base.go) and bound to exactly one
// Database at schema-binding time (see schema.Database); converters may
// read that binding through the BoundDialect field.
type DataType struct {
	// Name is the canonical (dialect-independent) type name, e.g. "BOOLEAN".
	Name string
	// Representative is the Go type values of this column hold, used only
	// for documentation/introspection purposes.
	Representative reflect.Type
	// ToDatabase converts a Go value into its storage form. Nil means no
	// conversion is necessary.
	ToDatabase Converter
	// FromDatabase converts a storage-form value back into a Go value. Nil
	// means no conversion is necessary.
	FromDatabase Converter
	// Length is set for parameterized variants (VARCHAR(255)). Zero means
	// unparameterized.
	Length int

	// BoundDialect is set by schema.Database during binding; converters
	// that need dialect-sensitive behavior may read it.
	BoundDialect string
}

// IsParameterized reports whether this instance carries a length.
func (d *DataType) IsParameterized() bool {
	return d.Length > 0
}

// Clone returns a shallow copy of d suitable for binding to a specific
// database. Non-parameterized data types are deduplicated by name across a
// database and copied once (see schema.Database construction);
// parameterized ones are bound in place, since their length already
// distinguishes instances.
func (d *DataType) Clone() *DataType {
	clone := *d
	return &clone
}

// WithLength returns a parameterized copy of d carrying the given length,
// e.g. Text().WithLength(255) for VARCHAR(255).
func (d *DataType) WithLength(n int) *DataType {
	clone := d.Clone()
	clone.Length = n
	return clone
}

// Render produces the dialect-correct SQL spelling of this data type, e.g.
// BOOLEAN becomes INTEGER on SQLite, and TEXT becomes NVARCHAR(n) on SQL
// Server when parameterized.
func (d *DataType) Render(dialectName string) string {
	switch d.Name {
	case "BOOLEAN":
		if dialectName == "sqlite" {
			return "INTEGER"
		}
		return "BOOLEAN"
	case "DATE", "DATETIME", "TIMESTAMP":
		if dialectName == "sqlite" {
			return "TEXT"
		}
		if d.Name == "DATE" {
			return "DATE"
		}
		return "DATETIME"
	case "TEXT":
		if d.IsParameterized() {
			if dialectName == "tsql" {
				return fmt.Sprintf("NVARCHAR(%d)", d.Length)
			}
			return fmt.Sprintf("VARCHAR(%d)", d.Length)
		}
		if dialectName == "tsql" {
			return "NVARCHAR(MAX)"
		}
		return "TEXT"
	default:
		if d.IsParameterized() {
			return fmt.Sprintf("%s(%d)", d.Name, d.Length)
		}
		return d.Name
	}
}

// convertChain applies a, then b, skipping nils. Used to compose a column's
// user converter with its data type's converter (spec.md §3 Record:
// "applies column's user converter, then data type's converter").
func convertChain(value any, a, b Converter) (any, error) {
	var err error
	if a != nil {
		value, err = a(value)
		if err != nil {
			return nil, err
		}
	}
	if b != nil {
		value, err = b(value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// ToDatabaseChain composes a user converter followed by this data type's
// ToDatabase converter.
func (d *DataType) ToDatabaseChain(value any, user Converter) (any, error) {
	return convertChain(value, user, d.ToDatabase)
}

// FromDatabaseChain composes this data type's FromDatabase converter
// followed by a user converter (inverse order of ToDatabaseChain, per
// spec.md §3: "value-from-database decoding (inverse order)").
func (d *DataType) FromDatabaseChain(value any, user Converter) (any, error) {
	return convertChain(value, d.FromDatabase, user)
}
