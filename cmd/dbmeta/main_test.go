package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joacominatel/dbmeta/internal/config"
	"github.com/joacominatel/dbmeta/internal/metadata"
)

func shopDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE orders (
		order_id INTEGER NOT NULL,
		line_no  INTEGER NOT NULL,
		status   VARCHAR(20),
		PRIMARY KEY (order_id, line_no)
	)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir(), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPKCommand(t *testing.T) {
	path := shopDB(t)

	out, err := run(t, "--dsn", path, "pk", "ORDERS")
	require.NoError(t, err)

	var got primaryKeysResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ORDERS", got.Table)
	assert.Equal(t, map[string]int16{"ORDER_ID": 1, "LINE_NO": 2}, got.PrimaryKeys)
}

func TestTypeCommand(t *testing.T) {
	path := shopDB(t)

	out, err := run(t, "--dsn", path, "-o", "json", "type", "--schema", "main", "orders", "status")
	require.NoError(t, err)

	var got sqlTypeResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sqlTypeResult{
		Schema:   "main",
		Table:    "orders",
		Column:   "status",
		TypeCode: 12,
		TypeName: "VARCHAR",
	}, got)
}

func TestTypeCommand_ColumnNotFound(t *testing.T) {
	path := shopDB(t)

	_, err := run(t, "--dsn", path, "type", "orders", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrColumnNotFound)
}

func TestCommands_NoConnection(t *testing.T) {
	_, err := run(t, "pk", "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no connection")

	_, err = run(t, "--connection", "nope", "pk", "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no saved connection named "nope"`)
}

func TestCommands_InvalidFlags(t *testing.T) {
	_, err := run(t, "-o", "xml", "connections")
	require.Error(t, err)

	_, err = run(t, "--dsn", "ftp://host/db", "pk", "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestConnectionEntries(t *testing.T) {
	opts := &rootOptions{cfg: &config.Config{
		Connections: []config.Connection{
			{Name: "warehouse", Driver: config.DriverDuckDB, Database: "/data/wh.duckdb"},
			{Name: "app", Driver: config.DriverSQLite, Database: "app.db"},
		},
		Preferences: config.Preferences{DefaultConnection: "warehouse"},
	}}

	entries := connectionEntries(opts)
	require.Len(t, entries, 2)
	assert.Equal(t, "app", entries[0].Name)
	assert.False(t, entries[0].Default)
	assert.Equal(t, "warehouse", entries[1].Name)
	assert.True(t, entries[1].Default)
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", primaryKeysResult{
		Table:       "orders",
		PrimaryKeys: map[string]int16{"ID": 1},
	}))
	assert.Equal(t, "table: orders\nprimary_keys:\n  ID: 1\n", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, "json", map[string]int16{}))
	assert.Equal(t, "{}\n", buf.String())

	assert.Error(t, render(&buf, "xml", nil))
}
