package config

import (
	"fmt"

	"github.com/crossql/crossql/schema"
	"github.com/crossql/crossql/sqltype"
)

// Build turns a declarative SchemaConfig into a bound schema.Database,
// resolving "table.column" reference strings into *schema.Column pointers
// in a second pass, since columns may reference a table declared after
// them.
func (cfg *SchemaConfig) Build() (*schema.Database, error) {
	tables := make([]*schema.Table, len(cfg.Tables))
	byName := map[string]*schema.Table{}

	for i, td := range cfg.Tables {
		table := &schema.Table{Name: td.Name, SchemaName: td.Schema}
		for _, cd := range td.Columns {
			col, err := buildColumn(cd)
			if err != nil {
				return nil, fmt.Errorf("config: table %s: %w", td.Name, err)
			}
			table.Columns = append(table.Columns, col)
		}
		tables[i] = table
		byName[td.Name] = table
	}

	for i, td := range cfg.Tables {
		table := tables[i]
		for j, cd := range td.Columns {
			if cd.References == "" {
				continue
			}
			targetTable, targetCol, err := resolveReference(byName, cd.References)
			if err != nil {
				return nil, fmt.Errorf("config: table %s column %s: %w", td.Name, cd.Name, err)
			}
			table.Columns[j].Reference = targetCol
			targetCol.ForeignKeys = append(targetCol.ForeignKeys, table.Columns[j])
			_ = targetTable
		}
	}

	return schema.NewDatabase(cfg.Name, cfg.Dialect, tables)
}

func buildColumn(cd ColumnDecl) (*schema.Column, error) {
	base, ok := sqltype.ByName(cd.Type)
	if !ok {
		return nil, fmt.Errorf("unknown data type %q for column %s", cd.Type, cd.Name)
	}
	dt := base
	if cd.Length > 0 {
		dt = base.WithLength(cd.Length)
	}
	return &schema.Column{
		Name:          cd.Name,
		DataType:      dt,
		PrimaryKey:    cd.PrimaryKey,
		AutoIncrement: cd.AutoIncrement,
		NotNull:       cd.NotNull,
		Unique:        cd.Unique,
		ValueSet:      cd.ValueSet,
	}, nil
}

func resolveReference(tables map[string]*schema.Table, ref string) (*schema.Table, *schema.Column, error) {
	tableName, colName := splitReference(ref)
	table, ok := tables[tableName]
	if !ok {
		return nil, nil, fmt.Errorf("references unknown table %q", tableName)
	}
	col, ok := table.ColumnByName(colName)
	if !ok {
		return nil, nil, fmt.Errorf("references unknown column %q on table %q", colName, tableName)
	}
	return table, col, nil
}

func splitReference(ref string) (table, column string) {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '.' {
			return ref[:i], ref[i+1:]
		}
	}
	return ref, ""
}
