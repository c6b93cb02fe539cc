package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
	_ "github.com/mattn/go-sqlite3"
)

// Name is the registry name of the SQLite driver.
const Name = "sqlite"

func init() {
	database.Register(Name, func() database.Driver { return New() })
}

// Driver implements the database.Driver interface for SQLite files.
type Driver struct {
	db     *sql.DB
	dbName string
}

// New creates a new SQLite driver.
func New() *Driver {
	return &Driver{}
}

// Connect opens the database file named by dsn. ":memory:" opens a private
// in-memory database.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	// A single connection keeps in-memory databases visible to every query.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping: %w", err)
	}

	d.db = db
	d.dbName = databaseName(dsn)
	return nil
}

func databaseName(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return "memory"
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
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

// ListSchemas returns the attached databases, "main" first.
func (d *Driver) ListSchemas(ctx context.Context) ([]string, error) {
	if d.db == nil {
		return nil, database.ErrNotConnected
	}
	return queryStrings(ctx, d.db, "list schemas", queryListSchemas)
}

// ListTables returns the tables of an attached database.
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
	rows, err := d.db.QueryContext(ctx, queryGetColumns, table, schema)
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}
	defer rows.Close()

	var columns []database.Column
	for rows.Next() {
		var col database.Column
		var notNull bool
		if err := rows.Scan(&col.Name, &col.DataType, &notNull, &col.OrdinalPos); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		col.IsNullable = !notNull
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

// DatabaseName returns the file name of the database without extension.
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
