package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joacominatel/dbmeta/internal/database"
)

// MetaData answers metadata lookups from INFORMATION_SCHEMA.
type MetaData struct {
	db        *sql.DB
	identCase database.IdentifierCase
}

// IdentifierCase reports how the server stores table names.
func (m *MetaData) IdentifierCase() database.IdentifierCase {
	return m.identCase
}

// PrimaryKeys lists the columns of the PRIMARY constraint of table.
// The catalog argument is ignored.
func (m *MetaData) PrimaryKeys(ctx context.Context, _, schema, table string) (database.Cursor[database.PrimaryKey], error) {
	rows, err := m.db.QueryContext(ctx, queryPrimaryKeys, schema, table)
	if err != nil {
		return nil, fmt.Errorf("query primary keys: %w", err)
	}
	return database.NewCursor(rows, rows.Close, scanPrimaryKey), nil
}

// Columns lists the columns of table, or the single named column.
// The catalog argument is ignored.
func (m *MetaData) Columns(ctx context.Context, _, schema, table, column string) (database.Cursor[database.ColumnType], error) {
	rows, err := m.db.QueryContext(ctx, queryColumnTypes, schema, table, column, column)
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
	var (
		col        database.ColumnType
		columnType string
		nullable   string
	)
	if err := s.Scan(&col.Catalog, &col.Schema, &col.Table, &col.Column,
		&col.TypeName, &columnType, &nullable, &col.Position); err != nil {
		return col, fmt.Errorf("scan column: %w", err)
	}
	col.Nullable = nullable == "YES"
	col.DataType = TypeCode(col.TypeName, columnType)
	return col, nil
}
