// Package testutil provides shared mock implementations of the database
// contracts for use in tests across the codebase.
package testutil

import (
	"context"
	"errors"

	"github.com/joacominatel/dbmeta/internal/database"
)

// === Cursor Mock ===

// MockCursor implements database.Cursor over fixed rows. When FailAt is
// positive, Row returns RowErr for the FailAt-th row (1-based).
type MockCursor[T any] struct {
	Rows     []T
	FailAt   int
	RowErr   error
	IterErr  error
	CloseErr error

	pos    int
	Closed bool
	Closes int
}

// Next implements the interface method for testing.
func (c *MockCursor[T]) Next() bool {
	if c.Closed || c.pos >= len(c.Rows) {
		return false
	}
	c.pos++
	return true
}

// Row implements the interface method for testing.
func (c *MockCursor[T]) Row() (T, error) {
	var zero T
	if c.Closed {
		return zero, database.ErrCursorClosed
	}
	if c.pos == 0 {
		return zero, errors.New("cursor not positioned on a row")
	}
	if c.FailAt > 0 && c.pos == c.FailAt {
		return zero, c.RowErr
	}
	return c.Rows[c.pos-1], nil
}

// Err implements the interface method for testing.
func (c *MockCursor[T]) Err() error {
	if c.pos >= len(c.Rows) {
		return c.IterErr
	}
	return nil
}

// Close implements the interface method for testing.
func (c *MockCursor[T]) Close() error {
	c.Closed = true
	c.Closes++
	return c.CloseErr
}

// === MetaData Mock ===

// PrimaryKeysCall records the arguments of a MockMetaData.PrimaryKeys call.
type PrimaryKeysCall struct {
	Catalog, Schema, Table string
}

// ColumnsCall records the arguments of a MockMetaData.Columns call.
type ColumnsCall struct {
	Catalog, Schema, Table, Column string
}

// MockMetaData implements database.MetaData for testing.
type MockMetaData struct {
	Case          database.IdentifierCase
	PrimaryKeysFn func(ctx context.Context, catalog, schema, table string) (database.Cursor[database.PrimaryKey], error)
	ColumnsFn     func(ctx context.Context, catalog, schema, table, column string) (database.Cursor[database.ColumnType], error)

	CaseCalls        int
	PrimaryKeysCalls []PrimaryKeysCall
	ColumnsCalls     []ColumnsCall
}

// IdentifierCase implements the interface method for testing.
func (m *MockMetaData) IdentifierCase() database.IdentifierCase {
	m.CaseCalls++
	return m.Case
}

// PrimaryKeys implements the interface method for testing.
func (m *MockMetaData) PrimaryKeys(ctx context.Context, catalog, schema, table string) (database.Cursor[database.PrimaryKey], error) {
	m.PrimaryKeysCalls = append(m.PrimaryKeysCalls, PrimaryKeysCall{catalog, schema, table})
	if m.PrimaryKeysFn != nil {
		return m.PrimaryKeysFn(ctx, catalog, schema, table)
	}
	panic("unexpected call to MockMetaData.PrimaryKeys")
}

// Columns implements the interface method for testing.
func (m *MockMetaData) Columns(ctx context.Context, catalog, schema, table, column string) (database.Cursor[database.ColumnType], error) {
	m.ColumnsCalls = append(m.ColumnsCalls, ColumnsCall{catalog, schema, table, column})
	if m.ColumnsFn != nil {
		return m.ColumnsFn(ctx, catalog, schema, table, column)
	}
	panic("unexpected call to MockMetaData.Columns")
}

// === Driver Mock ===

// MockDriver implements database.Driver for testing.
type MockDriver struct {
	ConnectFn     func(ctx context.Context, dsn string) error
	ListSchemasFn func(ctx context.Context) ([]string, error)
	ListTablesFn  func(ctx context.Context, schema string) ([]string, error)
	GetColumnsFn  func(ctx context.Context, schema, table string) ([]database.Column, error)
	MetaDataFn    func(ctx context.Context) (database.MetaData, error)
	Name          string

	ConnectedDSN string
	Closed       bool
}

// Connect implements the interface method for testing.
func (m *MockDriver) Connect(ctx context.Context, dsn string) error {
	if m.ConnectFn != nil {
		if err := m.ConnectFn(ctx, dsn); err != nil {
			return err
		}
	}
	m.ConnectedDSN = dsn
	return nil
}

// Close implements the interface method for testing.
func (m *MockDriver) Close() error {
	m.Closed = true
	return nil
}

// Ping implements the interface method for testing.
func (m *MockDriver) Ping(_ context.Context) error {
	return nil
}

// ListSchemas implements the interface method for testing.
func (m *MockDriver) ListSchemas(ctx context.Context) ([]string, error) {
	if m.ListSchemasFn != nil {
		return m.ListSchemasFn(ctx)
	}
	panic("unexpected call to MockDriver.ListSchemas")
}

// ListTables implements the interface method for testing.
func (m *MockDriver) ListTables(ctx context.Context, schema string) ([]string, error) {
	if m.ListTablesFn != nil {
		return m.ListTablesFn(ctx, schema)
	}
	panic("unexpected call to MockDriver.ListTables")
}

// GetColumns implements the interface method for testing.
func (m *MockDriver) GetColumns(ctx context.Context, schema, table string) ([]database.Column, error) {
	if m.GetColumnsFn != nil {
		return m.GetColumnsFn(ctx, schema, table)
	}
	panic("unexpected call to MockDriver.GetColumns")
}

// MetaData implements the interface method for testing.
func (m *MockDriver) MetaData(ctx context.Context) (database.MetaData, error) {
	if m.MetaDataFn != nil {
		return m.MetaDataFn(ctx)
	}
	panic("unexpected call to MockDriver.MetaData")
}

// DatabaseName implements the interface method for testing.
func (m *MockDriver) DatabaseName() string {
	return m.Name
}

// StaticMetaData returns a MetaDataFn that always yields md.
func StaticMetaData(md database.MetaData) func(context.Context) (database.MetaData, error) {
	return func(context.Context) (database.MetaData, error) {
		return md, nil
	}
}
