package sqltype

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"time"
)

// Base catalogue. These are the shared, un-bound instances a schema
// declaration starts from; schema.Database.bindDataType copies the
// non-parameterized ones per database so converters may safely close over
// the binding without mutating the shared catalogue (spec.md §4.1).

func Integer() *DataType {
	return &DataType{Name: "INTEGER", Representative: reflect.TypeOf(int64(0))}
}

func Real() *DataType {
	return &DataType{Name: "REAL", Representative: reflect.TypeOf(float64(0))}
}

func Text() *DataType {
	return &DataType{Name: "TEXT", Representative: reflect.TypeOf("")}
}

func Blob() *DataType {
	return &DataType{
		Name:           "BLOB",
		Representative: reflect.TypeOf([]byte(nil)),
	}
}

func Boolean() *DataType {
	return &DataType{
		Name:           "BOOLEAN",
		Representative: reflect.TypeOf(false),
		ToDatabase: func(value any) (any, error) {
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("sqltype: BOOLEAN expects bool, got %T", value)
			}
			if b {
				return int64(1), nil
			}
			return int64(0), nil
		},
		FromDatabase: func(value any) (any, error) {
			n, err := toInt64(value)
			if err != nil {
				return nil, err
			}
			return n != 0, nil
		},
	}
}

func Date() *DataType {
	return &DataType{
		Name:           "DATE",
		Representative: reflect.TypeOf(time.Time{}),
		ToDatabase: func(value any) (any, error) {
			t, ok := value.(time.Time)
			if !ok {
				return nil, fmt.Errorf("sqltype: DATE expects time.Time, got %T", value)
			}
			return t.Format("2006-01-02"), nil
		},
		FromDatabase: func(value any) (any, error) {
			s, err := toString(value)
			if err != nil {
				return nil, err
			}
			return time.Parse("2006-01-02", s)
		},
	}
}

func DateTime() *DataType {
	return &DataType{
		Name:           "DATETIME",
		Representative: reflect.TypeOf(time.Time{}),
		ToDatabase: func(value any) (any, error) {
			t, ok := value.(time.Time)
			if !ok {
				return nil, fmt.Errorf("sqltype: DATETIME expects time.Time, got %T", value)
			}
			return t.UTC().Format(time.RFC3339), nil
		},
		FromDatabase: func(value any) (any, error) {
			s, err := toString(value)
			if err != nil {
				return nil, err
			}
			return time.Parse(time.RFC3339, s)
		},
	}
}

// Base64Blob is a BLOB variant whose JSON import/export uses base64, per
// spec.md §4.7 ("binary→base64"). The storage-level ToDatabase/FromDatabase
// are identity; the base64 transform lives in package record's JSON layer,
// which recognizes this data type by name.
func Base64Blob() *DataType {
	dt := Blob()
	return dt
}

// EncodeBase64 and DecodeBase64 are standard-encoding base64 helpers for
// BLOB values. Package record's JSON layer does not call them; it uses
// encoding/json and encoding/base64 directly.
func EncodeBase64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func DecodeBase64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("sqltype: cannot convert %T to int64", value)
	}
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("sqltype: cannot convert %T to string", value)
	}
}

// ByName looks a base data type up by its canonical name, used by
// schema.Database binding to validate declared column types (spec.md §4.1
// failure mode UnknownDataType).
func ByName(name string) (*DataType, bool) {
	switch name {
	case "INTEGER":
		return Integer(), true
	case "REAL":
		return Real(), true
	case "TEXT":
		return Text(), true
	case "BLOB":
		return Blob(), true
	case "BOOLEAN":
		return Boolean(), true
	case "DATE":
		return Date(), true
	case "DATETIME":
		return DateTime(), true
	default:
		return nil, false
	}
}
