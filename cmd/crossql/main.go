// Command crossql loads a declarative schema config and a connection
// config, builds the schema, and runs one ad-hoc SELECT against it,
// printing the decoded records. Grounded on the teacher's cmd/sqlite3def
// go-flags option parsing style.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/crossql/crossql/config"
	"github.com/crossql/crossql/dbconn"
	"github.com/crossql/crossql/dbconn/mssql"
	"github.com/crossql/crossql/dbconn/mysql"
	"github.com/crossql/crossql/dbconn/postgres"
	"github.com/crossql/crossql/dbconn/sqlite3"
	"github.com/crossql/crossql/dialect"
	"github.com/crossql/crossql/internal/logging"
	"github.com/crossql/crossql/record"
	"github.com/crossql/crossql/statement"
	"github.com/crossql/crossql/transpile"
)

type options struct {
	SchemaFile     string `short:"s" long:"schema" description:"YAML schema declaration file" required:"true"`
	ConnectionFile string `short:"c" long:"connection" description:"YAML connection config file" required:"true"`
	Table          string `short:"t" long:"table" description:"Table to select all rows from"`
	AskPassword    bool   `long:"ask-password" description:"Prompt for the connection password instead of reading it from the config file"`
	Debug          bool   `long:"debug" description:"Dump the transpiled statement with k0kubun/pp before executing"`
	Version        bool   `long:"version" description:"Show this version"`
}

var version string

func main() {
	logging.Init()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[option...]"
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println(version)
		return
	}

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	schemaCfg, err := config.LoadSchemaConfig(opts.SchemaFile)
	if err != nil {
		return err
	}
	connCfg, err := config.LoadConnectionConfig(opts.ConnectionFile)
	if err != nil {
		return err
	}

	if opts.AskPassword {
		password, err := promptPassword()
		if err != nil {
			return err
		}
		connCfg.Password = password
	}

	db, err := schemaCfg.Build()
	if err != nil {
		return err
	}

	table, ok := db.TableByName(opts.Table)
	if !ok {
		return fmt.Errorf("crossql: table %q is not declared in %s", opts.Table, opts.SchemaFile)
	}

	sel, err := statement.NewSelect(statement.SelectSpec{Table: table})
	if err != nil {
		return err
	}

	d, err := connCfg.DialectValue()
	if err != nil {
		return err
	}
	result, err := transpile.Transpile(sel, d)
	if err != nil {
		return err
	}

	if opts.Debug {
		pp.Println(result)
	}
	slog.Info("executing select", "table", opts.Table, "dialect", d.String())

	conn, err := openConnection(d, connCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	var params any = result.Named
	if result.Named == nil {
		params = result.Positional
	}
	cursor, err := conn.Execute(result.SQL, params)
	if err != nil {
		return err
	}
	defer cursor.Close()

	var rows [][]any
	for {
		row, ok := cursor.NextRow()
		if !ok {
			break
		}
		rows = append(rows, row)
	}

	records, err := record.DecodeRows(db, cursor.ColumnAliases(), rows)
	if err != nil {
		return err
	}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			value, _ := rec.Get(key)
			fmt.Printf("%s = %v\n", key.Alias(), value)
		}
		fmt.Println("---")
	}
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("crossql: reading password: %w", err)
	}
	return string(b), nil
}

func openConnection(d dialect.Dialect, cfg *config.ConnectionConfig) (dbconn.Connection, error) {
	switch d {
	case dialect.SQLite:
		return sqlite3.Open(cfg.Path)
	case dialect.MySQL:
		return mysql.Open(mysql.Config{
			User: cfg.User, Password: cfg.Password, Host: cfg.Host, Port: cfg.Port, Database: cfg.Database,
		})
	case dialect.PostgreSQL:
		return postgres.Open(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database))
	case dialect.SQLServer:
		return mssql.Open(mssql.Config{
			User: cfg.User, Password: cfg.Password, Host: cfg.Host, Port: cfg.Port, Database: cfg.Database,
		})
	default:
		return nil, fmt.Errorf("crossql: dialect %s has no CLI-wired backend yet", d)
	}
}
