// Package metadata reads primary keys and column SQL types from the
// metadata provider of the current database connection.
package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joacominatel/dbmeta/internal/database"
)

const (
	opPrimaryKeys = "primary keys"
	opSQLType     = "sql type"
)

// Extractor reads key and type information for tables. Backends whose
// driver metadata is incomplete can supply their own implementation.
type Extractor interface {
	// PrimaryKeys maps each primary-key column, uppercased, to its 1-based
	// position in the key. A table without a primary key yields an empty map.
	PrimaryKeys(ctx context.Context, table string) (map[string]int16, error)

	// SQLType returns the standard SQL type code of a column. An empty
	// schema leaves the schema unspecified.
	SQLType(ctx context.Context, schema, table, column string) (int, error)
}

// MetaDataSource hands out the metadata provider of the current connection.
type MetaDataSource interface {
	MetaData(ctx context.Context) (database.MetaData, error)
}

// DriverExtractor implements Extractor on top of driver metadata.
// It holds no mutable state.
type DriverExtractor struct {
	source MetaDataSource
	logger *slog.Logger
}

// NewDriverExtractor creates an Extractor reading from source.
func NewDriverExtractor(source MetaDataSource, logger *slog.Logger) *DriverExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DriverExtractor{source: source, logger: logger}
}

// PrimaryKeys implements Extractor.
func (e *DriverExtractor) PrimaryKeys(ctx context.Context, table string) (map[string]int16, error) {
	md, err := e.source.MetaData(ctx)
	if err != nil {
		return nil, &ErrMetadataAccess{Op: opPrimaryKeys, Table: table, Cause: err}
	}

	cur, err := md.PrimaryKeys(ctx, "", "", database.ConvertIdentifier(md, table))
	if err != nil {
		return nil, &ErrMetadataAccess{Op: opPrimaryKeys, Table: table, Cause: err}
	}

	keys, err := collectPrimaryKeys(cur)
	if err != nil {
		return nil, &ErrMetadataAccess{Op: opPrimaryKeys, Table: table, Cause: err}
	}

	e.logger.Debug("primary keys loaded", "table", table, "columns", len(keys))
	return keys, nil
}

// SQLType implements Extractor.
func (e *DriverExtractor) SQLType(ctx context.Context, schema, table, column string) (int, error) {
	md, err := e.source.MetaData(ctx)
	if err != nil {
		return 0, &ErrMetadataAccess{Op: opSQLType, Table: table, Cause: err}
	}

	var convSchema string
	if schema != "" {
		convSchema = database.ConvertIdentifier(md, schema)
	}
	convTable := database.ConvertIdentifier(md, table)
	convColumn := database.ConvertIdentifier(md, column)
	name := qualify(convSchema, convTable, convColumn)

	cur, err := md.Columns(ctx, "", convSchema, convTable, convColumn)
	if err != nil {
		return 0, &ErrMetadataAccess{Op: opSQLType, Table: table, Cause: err}
	}

	col, found, extra, err := firstColumn(cur)
	if err != nil {
		return 0, &ErrMetadataAccess{Op: opSQLType, Table: table, Cause: err}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	if extra {
		e.logger.Warn("column lookup matched more than one column, using the first",
			"column", name,
			"schema", col.Schema,
		)
	}

	e.logger.Debug("sql type loaded", "column", name, "type", col.DataType)
	return col.DataType, nil
}

func collectPrimaryKeys(cur database.Cursor[database.PrimaryKey]) (keys map[string]int16, err error) {
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			keys, err = nil, fmt.Errorf("close cursor: %w", cerr)
		}
	}()

	keys = make(map[string]int16)
	for cur.Next() {
		pk, err := cur.Row()
		if err != nil {
			return nil, fmt.Errorf("read primary key: %w", err)
		}
		keys[strings.ToUpper(pk.ColumnName)] = pk.KeySeq
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate primary keys: %w", err)
	}
	return keys, nil
}

// firstColumn reads the first row of cur and reports whether a second row
// exists.
func firstColumn(cur database.Cursor[database.ColumnType]) (col database.ColumnType, found, extra bool, err error) {
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close cursor: %w", cerr)
		}
	}()

	if !cur.Next() {
		if err := cur.Err(); err != nil {
			return col, false, false, fmt.Errorf("iterate columns: %w", err)
		}
		return col, false, false, nil
	}

	col, err = cur.Row()
	if err != nil {
		return col, false, false, fmt.Errorf("read column: %w", err)
	}

	extra = cur.Next()
	if err := cur.Err(); err != nil {
		return col, false, false, fmt.Errorf("iterate columns: %w", err)
	}
	return col, true, extra, nil
}

func qualify(parts ...string) string {
	var names []string
	for _, p := range parts {
		if p != "" {
			names = append(names, p)
		}
	}
	return strings.Join(names, ".")
}
