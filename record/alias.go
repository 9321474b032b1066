package record

import (
	"fmt"
	"strings"
)

// AliasKind distinguishes the three shapes of spec.md §4.7's alias
// grammar.
type AliasKind int

const (
	AliasColumn AliasKind = iota
	AliasFunctionOnly
	AliasFunctionColumn
)

// ParsedAlias is the decomposed form of a projection alias, per the
// grammar:
//
//	alias := "COLUMN." fqn
//	       | "FUNCTION." fname
//	       | "FUNCTION." fname "." "COLUMN." fqn
//	fqn   := (dbname ".")? (schema ".")? tname "." cname
//
// The leading dbname segment is only present when Table.FullyQualifiedName
// included one — SQLite's unattached tables render bare (no db prefix),
// so their column aliases carry just "table.column"; DatabaseName is left
// empty in that case and resolveColumn treats that as "this database".
type ParsedAlias struct {
	Kind         AliasKind
	DatabaseName string
	SchemaName   string // optional, only when fqn had 4 segments
	TableName    string
	ColumnName   string
	FuncName     string
}

// ParseAlias decomposes alias according to spec.md §4.7's grammar.
func ParseAlias(alias string) (*ParsedAlias, error) {
	parts := strings.Split(alias, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("record: malformed alias %q", alias)
	}

	switch parts[0] {
	case "COLUMN":
		fqn, err := parseFQN(parts[1:])
		if err != nil {
			return nil, fmt.Errorf("record: malformed alias %q: %w", alias, err)
		}
		fqn.Kind = AliasColumn
		return fqn, nil

	case "FUNCTION":
		if len(parts) < 2 {
			return nil, fmt.Errorf("record: malformed alias %q", alias)
		}
		fname := parts[1]
		if len(parts) == 2 {
			return &ParsedAlias{Kind: AliasFunctionOnly, FuncName: fname}, nil
		}
		if len(parts) > 2 && parts[2] == "COLUMN" {
			fqn, err := parseFQN(parts[3:])
			if err != nil {
				return nil, fmt.Errorf("record: malformed alias %q: %w", alias, err)
			}
			fqn.Kind = AliasFunctionColumn
			fqn.FuncName = fname
			return fqn, nil
		}
		return nil, fmt.Errorf("record: malformed alias %q", alias)

	default:
		return nil, fmt.Errorf("record: alias %q does not start with COLUMN or FUNCTION", alias)
	}
}

func parseFQN(segments []string) (*ParsedAlias, error) {
	switch len(segments) {
	case 2:
		return &ParsedAlias{
			TableName:  segments[0],
			ColumnName: segments[1],
		}, nil
	case 3:
		return &ParsedAlias{
			DatabaseName: segments[0],
			TableName:    segments[1],
			ColumnName:   segments[2],
		}, nil
	case 4:
		return &ParsedAlias{
			DatabaseName: segments[0],
			SchemaName:   segments[1],
			TableName:    segments[2],
			ColumnName:   segments[3],
		}, nil
	default:
		return nil, fmt.Errorf("fully qualified name has %d segments, want 2, 3, or 4", len(segments))
	}
}

// String reconstructs the alias text, the inverse of ParseAlias.
func (p *ParsedAlias) String() string {
	var fqn string
	switch {
	case p.SchemaName != "":
		fqn = fmt.Sprintf("%s.%s.%s.%s", p.DatabaseName, p.SchemaName, p.TableName, p.ColumnName)
	case p.DatabaseName != "":
		fqn = fmt.Sprintf("%s.%s.%s", p.DatabaseName, p.TableName, p.ColumnName)
	default:
		fqn = fmt.Sprintf("%s.%s", p.TableName, p.ColumnName)
	}
	switch p.Kind {
	case AliasColumn:
		return "COLUMN." + fqn
	case AliasFunctionOnly:
		return "FUNCTION." + p.FuncName
	case AliasFunctionColumn:
		return fmt.Sprintf("FUNCTION.%s.COLUMN.%s", p.FuncName, fqn)
	default:
		return ""
	}
}
