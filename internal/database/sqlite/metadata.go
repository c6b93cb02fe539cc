package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/joacominatel/dbmeta/internal/database"
)

// MetaData answers metadata lookups with the table_info pragma.
type MetaData struct {
	db *sql.DB
}

// IdentifierCase reports that SQLite keeps names as written and matches
// them case-insensitively.
func (m *MetaData) IdentifierCase() database.IdentifierCase {
	return database.IdentifierMixed
}

// PrimaryKeys lists the primary-key columns of table. SQLite has no
// catalogs; the catalog argument is ignored.
func (m *MetaData) PrimaryKeys(ctx context.Context, _, schema, table string) (database.Cursor[database.PrimaryKey], error) {
	rows, err := m.db.QueryContext(ctx, queryPrimaryKeys, table, schemaArg(schema))
	if err != nil {
		return nil, fmt.Errorf("query primary keys: %w", err)
	}
	scan := func(s database.Scanner) (database.PrimaryKey, error) {
		pk := database.PrimaryKey{Schema: schema, Table: table}
		if err := s.Scan(&pk.ColumnName, &pk.KeySeq); err != nil {
			return pk, fmt.Errorf("scan primary key: %w", err)
		}
		return pk, nil
	}
	return database.NewCursor(rows, rows.Close, scan), nil
}

// Columns lists the columns of table, or the single named column.
func (m *MetaData) Columns(ctx context.Context, _, schema, table, column string) (database.Cursor[database.ColumnType], error) {
	rows, err := m.db.QueryContext(ctx, queryColumnTypes, table, schemaArg(schema), column, column)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	scan := func(s database.Scanner) (database.ColumnType, error) {
		col := database.ColumnType{Schema: schema, Table: table}
		var notNull bool
		if err := s.Scan(&col.Column, &col.TypeName, &notNull, &col.Position); err != nil {
			return col, fmt.Errorf("scan column: %w", err)
		}
		col.Nullable = !notNull
		col.DataType = TypeCode(col.TypeName)
		return col, nil
	}
	return database.NewCursor(rows, rows.Close, scan), nil
}

func schemaArg(schema string) sql.NullString {
	return sql.NullString{String: schema, Valid: schema != ""}
}
