package details

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/dbmeta/internal/app"
	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ordersMetadata() *app.TableMetadata {
	return &app.TableMetadata{
		Schema: "public",
		Table:  "orders",
		Columns: []app.ColumnInfo{
			{Name: "tenant_id", TypeName: "integer", SQLType: database.TypeInteger, KeySeq: 1},
			{Name: "order_id", TypeName: "bigint", SQLType: database.TypeBigInt, KeySeq: 2},
			{Name: "note", TypeName: "character varying", SQLType: database.TypeVarchar, Nullable: true},
		},
		PrimaryKeys: map[string]int16{"TENANT_ID": 1, "ORDER_ID": 2},
	}
}

func captureClipboard(t *testing.T) *string {
	t.Helper()
	var got string
	prev := WriteClipboard
	WriteClipboard = func(s string) error {
		got = s
		return nil
	}
	t.Cleanup(func() { WriteClipboard = prev })
	return &got
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows(ordersMetadata())

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"tenant_id", "1", "4", "INTEGER", "integer", "NO"}, rows[0])
	assert.Equal(t, []string{"note", "", "12", "VARCHAR", "character varying", "YES"}, rows[2])
}

func TestView(t *testing.T) {
	m := New()
	m.SetSize(120, 20)

	assert.Contains(t, m.View(), "Select a table")

	m.SetTable(ordersMetadata())
	view := m.View()
	assert.Contains(t, view, "public.orders")
	assert.Contains(t, view, "key: TENANT_ID, ORDER_ID")
	assert.Contains(t, view, "VARCHAR")

	m.SetError(errors.New("boom"))
	assert.Contains(t, m.View(), "Error: boom")
	assert.Nil(t, m.Table())
}

func TestCopyTypeCode(t *testing.T) {
	got := captureClipboard(t)

	m := New()
	m.SetSize(120, 20)
	m.SetFocused(true)
	m.SetTable(ordersMetadata())

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("y"))

	assert.Equal(t, "-5", *got)
	assert.Equal(t, "Copied order_id type code -5", m.Status())
}

func TestCopyPrimaryKeys(t *testing.T) {
	got := captureClipboard(t)

	m := New()
	m.SetFocused(true)
	m.SetTable(ordersMetadata())

	m, _ = m.Update(key("Y"))

	assert.JSONEq(t, `{"TENANT_ID":1,"ORDER_ID":2}`, *got)
	assert.Equal(t, "Copied primary key map as JSON", m.Status())
}

func TestCopyWithoutTable(t *testing.T) {
	got := captureClipboard(t)

	m := New()
	m.SetFocused(true)
	m, _ = m.Update(key("y"))

	assert.Empty(t, *got)
	assert.Equal(t, "Nothing to copy", m.Status())
}

func TestCopyFailure(t *testing.T) {
	prev := WriteClipboard
	WriteClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { WriteClipboard = prev })

	m := New()
	m.SetFocused(true)
	m.SetTable(ordersMetadata())
	m, _ = m.Update(key("y"))

	assert.Equal(t, "Copy failed: no clipboard", m.Status())
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	got := captureClipboard(t)

	m := New()
	m.SetTable(ordersMetadata())
	m, _ = m.Update(key("y"))

	assert.Empty(t, *got)
}
