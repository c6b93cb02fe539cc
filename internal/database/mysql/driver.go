package mysql

import (
	"context"
	"database/sql"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/joacominatel/dbmeta/internal/database"
)

// Name is the registry name of the MySQL driver.
const Name = "mysql"

func init() {
	database.Register(Name, func() database.Driver { return New() })
}

// Driver implements the database.Driver interface for MySQL.
type Driver struct {
	db        *sql.DB
	dbName    string
	identCase database.IdentifierCase
}

// New creates a new MySQL driver.
func New() *Driver {
	return &Driver{}
}

// Connect opens a connection pool using a go-sql-driver DSN
// (user:pass@tcp(host:3306)/dbname).
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	cfg, err := mysqldrv.ParseDSN(dsn)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}

	connector, err := mysqldrv.NewConnector(cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(5)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("mysql ping failed: %w", err)
	}

	var lowerCaseTableNames int
	if err := db.QueryRowContext(ctx, queryLowerCaseTableNames).Scan(&lowerCaseTableNames); err != nil {
		db.Close()
		return fmt.Errorf("read lower_case_table_names: %w", err)
	}

	d.db = db
	d.dbName = cfg.DBName
	d.identCase = identifierCase(lowerCaseTableNames)
	return nil
}

// identifierCase maps the lower_case_table_names server setting. Only mode 1
// stores names in lower case; modes 0 and 2 keep them as written.
func identifierCase(lowerCaseTableNames int) database.IdentifierCase {
	if lowerCaseTableNames == 1 {
		return database.IdentifierLower
	}
	return database.IdentifierMixed
}

// Close closes the connection pool.
func (d *Driver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Ping checks if the connection is alive.
func (d *Driver) Ping(ctx context.Context) error {
	if d.db == nil {
		return database.ErrNotConnected
	}
	return d.db.PingContext(ctx)
}

// ListSchemas returns the non-system databases of the server.
func (d *Driver) ListSchemas(ctx context.Context) ([]string, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return queryStrings(ctx, d.db, "list schemas", queryListSchemas)
}

// ListTables returns all base table names in a schema.
func (d *Driver) ListTables(ctx context.Context, schema string) ([]string, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return queryStrings(ctx, d.db, "list tables", queryListTables, schema)
}

// GetColumns returns column metadata for a table.
func (d *Driver) GetColumns(ctx context.Context, schema, table string) ([]database.Column, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	rows, err := d.db.QueryContext(ctx, queryGetColumns, schema, table)
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}
	defer rows.Close()

	var columns []database.Column
	for rows.Next() {
		var col database.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.OrdinalPos); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		col.IsNullable = nullable == "YES"
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// MetaData returns the metadata provider for the connection pool.
func (d *Driver) MetaData(_ context.Context) (database.MetaData, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return &MetaData{db: d.db, identCase: d.identCase}, nil
}

// DatabaseName returns the name of the connected database.
func (d *Driver) DatabaseName() string {
	return d.dbName
}

func queryStrings(ctx context.Context, db *sql.DB, op, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
