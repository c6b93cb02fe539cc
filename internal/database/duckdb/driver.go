package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/joacominatel/dbmeta/internal/database"
)

// Name is the registry name of the DuckDB driver.
const Name = "duckdb"

func init() {
	database.Register(Name, func() database.Driver { return New() })
}

// Driver implements the database.Driver interface for DuckDB.
type Driver struct {
	db     *sql.DB
	dbName string
}

// New creates a new DuckDB driver.
func New() *Driver {
	return &Driver{}
}

// Connect opens the DuckDB database file named by dsn. An empty dsn opens
// an in-memory database.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping: %w", err)
	}

	var name string
	if err := db.QueryRowContext(ctx, queryCurrentDatabase).Scan(&name); err != nil {
		db.Close()
		return fmt.Errorf("current database: %w", err)
	}

	d.db = db
	d.dbName = name
	return nil
}

// DB exposes the underlying handle, mainly for loading fixtures.
func (d *Driver) DB() *sql.DB {
	return d.db
}

// Close closes the database.
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

// ListSchemas returns the schemas of the current database.
func (d *Driver) ListSchemas(ctx context.Context) ([]string, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return queryStrings(ctx, d.db, "list schemas", queryListSchemas)
}

// ListTables returns the base tables of a schema in the current database.
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
		if err := rows.Scan(&col.Name, &col.DataType, &col.IsNullable, &col.OrdinalPos); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// MetaData returns the metadata provider for the database.
func (d *Driver) MetaData(_ context.Context) (database.MetaData, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return &MetaData{db: d.db}, nil
}

// DatabaseName returns the name of the current database.
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
