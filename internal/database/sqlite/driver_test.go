package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/joacominatel/dbmeta/internal/database/sqlite"
	"github.com/joacominatel/dbmeta/internal/metadata"
)

const fixtureDDL = `
CREATE TABLE "USER" (
	id     INTEGER NOT NULL,
	tenant TEXT NOT NULL,
	name   VARCHAR(100),
	PRIMARY KEY (id, tenant)
);
CREATE TABLE orders (
	order_id  INTEGER PRIMARY KEY,
	status    VARCHAR(20) NOT NULL,
	total     DECIMAL(10,2),
	placed_at DATETIME,
	payload   BLOB
);
CREATE TABLE audit_log (message TEXT);
`

func setupDriver(t *testing.T) *sqlite.Driver {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(fixtureDDL)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	d := sqlite.New()
	require.NoError(t, d.Connect(context.Background(), path))
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestDriver_Browse(t *testing.T) {
	d := setupDriver(t)
	ctx := context.Background()

	assert.Equal(t, "shop", d.DatabaseName())

	schemas, err := d.ListSchemas(ctx)
	require.NoError(t, err)
	assert.Contains(t, schemas, "main")

	tables, err := d.ListTables(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"USER", "audit_log", "orders"}, tables)

	cols, err := d.GetColumns(ctx, "main", "orders")
	require.NoError(t, err)
	require.Len(t, cols, 5)
	assert.Equal(t, database.Column{Name: "order_id", DataType: "INTEGER", IsNullable: true, OrdinalPos: 1}, cols[0])
	assert.False(t, cols[1].IsNullable)
}

func TestExtractor_PrimaryKeys(t *testing.T) {
	ext := metadata.NewDriverExtractor(setupDriver(t), nil)
	ctx := context.Background()

	for _, table := range []string{"USER", "user", "User"} {
		keys, err := ext.PrimaryKeys(ctx, table)
		require.NoError(t, err, table)
		assert.Equal(t, map[string]int16{"ID": 1, "TENANT": 2}, keys, table)
	}

	keys, err := ext.PrimaryKeys(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, map[string]int16{"ORDER_ID": 1}, keys)

	keys, err = ext.PrimaryKeys(ctx, "audit_log")
	require.NoError(t, err)
	assert.Empty(t, keys)

	keys, err = ext.PrimaryKeys(ctx, "no_such_table")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestExtractor_SQLType(t *testing.T) {
	ext := metadata.NewDriverExtractor(setupDriver(t), nil)
	ctx := context.Background()

	tests := []struct {
		schema, table, column string
		want                  int
	}{
		{"", "ORDERS", "status", database.TypeVarchar},
		{"main", "orders", "STATUS", database.TypeVarchar},
		{"", "orders", "order_id", database.TypeInteger},
		{"", "orders", "total", database.TypeDecimal},
		{"", "orders", "placed_at", database.TypeTimestamp},
		{"", "orders", "payload", database.TypeBlob},
		{"", "USER", "tenant", database.TypeVarchar},
	}

	for _, tt := range tests {
		code, err := ext.SQLType(ctx, tt.schema, tt.table, tt.column)
		require.NoError(t, err, tt.column)
		assert.Equal(t, tt.want, code, tt.column)
	}
}

func TestExtractor_SQLTypeMissingColumn(t *testing.T) {
	ext := metadata.NewDriverExtractor(setupDriver(t), nil)

	_, err := ext.SQLType(context.Background(), "", "orders", "discount")
	assert.ErrorIs(t, err, metadata.ErrColumnNotFound)

	_, err = ext.SQLType(context.Background(), "", "no_such_table", "id")
	assert.ErrorIs(t, err, metadata.ErrColumnNotFound)
}

func TestMetaData_AllColumns(t *testing.T) {
	md, err := setupDriver(t).MetaData(context.Background())
	require.NoError(t, err)

	cur, err := md.Columns(context.Background(), "", "main", "USER", "")
	require.NoError(t, err)
	defer cur.Close()

	var names []string
	for cur.Next() {
		col, err := cur.Row()
		require.NoError(t, err)
		names = append(names, col.Column)
	}
	require.NoError(t, cur.Err())
	assert.Equal(t, []string{"id", "tenant", "name"}, names)
}

func TestDriver_Registered(t *testing.T) {
	d, err := database.New(sqlite.Name)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Driver{}, d)
}
