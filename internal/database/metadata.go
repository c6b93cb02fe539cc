package database

import "context"

// IdentifierCase describes how an engine stores unquoted identifiers.
type IdentifierCase int

const (
	// IdentifierMixed engines keep identifiers as written and match them
	// case-insensitively.
	IdentifierMixed IdentifierCase = iota
	IdentifierUpper
	IdentifierLower
)

func (c IdentifierCase) String() string {
	switch c {
	case IdentifierUpper:
		return "upper"
	case IdentifierLower:
		return "lower"
	default:
		return "mixed"
	}
}

// MetaData answers structural questions about the connected database
// without running user queries.
//
// An empty catalog or schema means "unspecified": rows from any catalog or
// schema are returned. Callers must Close every Cursor they receive.
type MetaData interface {
	// IdentifierCase reports the engine's storage case for unquoted names.
	IdentifierCase() IdentifierCase

	// PrimaryKeys lists the primary-key columns of table.
	PrimaryKeys(ctx context.Context, catalog, schema, table string) (Cursor[PrimaryKey], error)

	// Columns lists the columns of table. An empty column returns every
	// column of the table.
	Columns(ctx context.Context, catalog, schema, table, column string) (Cursor[ColumnType], error)
}
