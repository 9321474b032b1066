// Package config loads crossql's two configuration documents: a per-run
// connection target (config.ConnectionConfig) and a declarative schema
// definition (config.SchemaConfig), per spec.md §4.8. Both are YAML
// (gopkg.in/yaml.v3, the teacher's config format) validated with
// go-playground/validator struct tags.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/crossql/crossql/dialect"
)

var validate = validator.New()

// ConnectionConfig names the dialect and connection parameters for one
// target database (spec.md §4.8 ambient stack).
type ConnectionConfig struct {
	Dialect  string `yaml:"dialect" validate:"required,oneof=sqlite tsql postgres mysql"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" validate:"required"`
	// Path is used only by the SQLite dialect: a file path or ":memory:".
	Path string `yaml:"path"`
}

// LoadConnectionConfig reads and validates a ConnectionConfig from path.
func LoadConnectionConfig(path string) (*ConnectionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg ConnectionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid connection config: %w", err)
	}
	return &cfg, nil
}

// DialectValue parses the configured dialect string.
func (c *ConnectionConfig) DialectValue() (dialect.Dialect, error) {
	return dialect.Parse(c.Dialect)
}

// ColumnDecl is one column's declarative definition inside a SchemaConfig
// table (spec.md §4.8's YAML schema declarations).
type ColumnDecl struct {
	Name          string `yaml:"name" validate:"required"`
	Type          string `yaml:"type" validate:"required"`
	Length        int    `yaml:"length"`
	PrimaryKey    bool   `yaml:"primary_key"`
	AutoIncrement bool   `yaml:"auto_increment"`
	NotNull       bool   `yaml:"not_null"`
	Unique        bool   `yaml:"unique"`
	References    string `yaml:"references"` // "table.column", or empty
	ValueSet      []any  `yaml:"value_set"`
}

// TableDecl declares one table's name and columns.
type TableDecl struct {
	Name    string       `yaml:"name" validate:"required"`
	Schema  string       `yaml:"schema"`
	Columns []ColumnDecl `yaml:"columns" validate:"required,min=1,dive"`
}

// SchemaConfig is a whole database's declarative schema, per spec.md
// §4.8: "config.SchemaConfig (YAML schema declarations)".
type SchemaConfig struct {
	Name    string      `yaml:"name" validate:"required"`
	Dialect string      `yaml:"dialect" validate:"required,oneof=sqlite tsql postgres mysql"`
	Tables  []TableDecl `yaml:"tables" validate:"required,min=1,dive"`
}

// LoadSchemaConfig reads and validates a SchemaConfig from path.
func LoadSchemaConfig(path string) (*SchemaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg SchemaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid schema config: %w", err)
	}
	return &cfg, nil
}
