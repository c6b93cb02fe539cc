package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joacominatel/dbmeta/internal/database"
)

// MetaData answers metadata lookups from the duckdb_constraints and
// duckdb_columns table functions.
type MetaData struct {
	db *sql.DB
}

// IdentifierCase reports that DuckDB keeps names as written and matches
// them case-insensitively.
func (m *MetaData) IdentifierCase() database.IdentifierCase {
	return database.IdentifierMixed
}

// PrimaryKeys lists the primary-key columns of table. The catalog is the
// DuckDB database name.
func (m *MetaData) PrimaryKeys(ctx context.Context, catalog, schema, table string) (database.Cursor[database.PrimaryKey], error) {
	rows, err := m.db.QueryContext(ctx, queryPrimaryKeys, catalog, catalog, schema, schema, table)
	if err != nil {
		return nil, fmt.Errorf("query primary keys: %w", err)
	}
	return database.NewCursor(rows, rows.Close, scanPrimaryKey), nil
}

// Columns lists the columns of table, or the single named column.
func (m *MetaData) Columns(ctx context.Context, catalog, schema, table, column string) (database.Cursor[database.ColumnType], error) {
	rows, err := m.db.QueryContext(ctx, queryColumnTypes, catalog, catalog, schema, schema, table, column, column)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	return database.NewCursor(rows, rows.Close, scanColumnType), nil
}

func scanPrimaryKey(s database.Scanner) (database.PrimaryKey, error) {
	var pk database.PrimaryKey
	if err := s.Scan(&pk.Catalog, &pk.Schema, &pk.Table, &pk.ColumnName, &pk.KeySeq); err != nil {
		return pk, fmt.Errorf("scan primary key: %w", err)
	}
	return pk, nil
}

func scanColumnType(s database.Scanner) (database.ColumnType, error) {
	var col database.ColumnType
	if err := s.Scan(&col.Catalog, &col.Schema, &col.Table, &col.Column,
		&col.TypeName, &col.Nullable, &col.Position); err != nil {
		return col, fmt.Errorf("scan column: %w", err)
	}
	col.DataType = TypeCode(col.TypeName)
	return col, nil
}
