package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/joacominatel/dbmeta/internal/database"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// MetaData answers metadata lookups from information_schema.
type MetaData struct {
	q querier
}

// IdentifierCase reports that PostgreSQL folds unquoted names to lower case.
func (m *MetaData) IdentifierCase() database.IdentifierCase {
	return database.IdentifierLower
}

// PrimaryKeys lists the primary-key columns of table.
func (m *MetaData) PrimaryKeys(ctx context.Context, catalog, schema, table string) (database.Cursor[database.PrimaryKey], error) {
	rows, err := m.q.Query(ctx, queryPrimaryKeys, catalog, schema, table)
	if err != nil {
		return nil, fmt.Errorf("query primary keys: %w", err)
	}
	return database.NewCursor(rows, closeRows(rows), scanPrimaryKey), nil
}

// Columns lists the columns of table, or the single named column.
func (m *MetaData) Columns(ctx context.Context, catalog, schema, table, column string) (database.Cursor[database.ColumnType], error) {
	rows, err := m.q.Query(ctx, queryColumnTypes, catalog, schema, table, column)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	return database.NewCursor(rows, closeRows(rows), scanColumnType), nil
}

func closeRows(rows pgx.Rows) func() error {
	return func() error {
		rows.Close()
		return nil
	}
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
		col      database.ColumnType
		nullable string
	)
	if err := s.Scan(&col.Catalog, &col.Schema, &col.Table, &col.Column, &col.TypeName, &nullable, &col.Position); err != nil {
		return col, fmt.Errorf("scan column: %w", err)
	}
	col.Nullable = nullable == "YES"
	col.DataType = TypeCode(col.TypeName)
	return col, nil
}
