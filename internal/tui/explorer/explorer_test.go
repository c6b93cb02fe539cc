package explorer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/dbmeta/internal/app"
	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() *app.SchemaTree {
	return &app.SchemaTree{
		Database: "shop",
		Schemas: []app.SchemaNode{
			{Name: "public", Tables: []string{"customers", "orders"}},
		},
	}
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.Update(msg)
}

func newExplorer() Model {
	m := New()
	m.SetSize(60, 20)
	m.SetFocused(true)
	m.SetTree(tree())
	return m
}

func TestExpandTableRequestsMetadata(t *testing.T) {
	m := newExplorer()

	m, _ = press(m, "down")  // public
	m, _ = press(m, "enter") // expand schema
	m, _ = press(m, "down")  // customers
	m, _ = press(m, "down")  // orders

	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, RequestTableMsg{Schema: "public", Table: "orders"}, cmd())

	schema, table, ok := m.SelectedTable()
	assert.True(t, ok)
	assert.Equal(t, "public", schema)
	assert.Equal(t, "orders", table)
}

func TestSetTableMetadataAnnotatesColumns(t *testing.T) {
	m := newExplorer()
	m, _ = press(m, "down")
	m, _ = press(m, "enter")
	m, _ = press(m, "down")
	m, _ = press(m, "down")
	m, _ = press(m, "enter")

	m.SetTableMetadata(&app.TableMetadata{
		Schema: "public",
		Table:  "orders",
		Columns: []app.ColumnInfo{
			{Name: "order_id", SQLType: database.TypeBigInt, KeySeq: 1},
			{Name: "placed_at", SQLType: database.TypeTimestamp},
		},
	})

	view := m.View()
	assert.Contains(t, view, "order_id")
	assert.Contains(t, view, "(-5)")
	assert.Contains(t, view, "PK1")
	assert.Contains(t, view, "(93)")

	m, _ = press(m, "down") // order_id
	m, cmd := press(m, "r")
	require.NotNil(t, cmd)
	assert.Equal(t, RequestTableMsg{Schema: "public", Table: "orders"}, cmd())
}

func TestCollapse(t *testing.T) {
	m := newExplorer()
	require.Len(t, m.items, 2)

	m, _ = press(m, "h")
	assert.Len(t, m.items, 1)

	_, _, ok := m.SelectedTable()
	assert.False(t, ok)
}

func TestUnfocused(t *testing.T) {
	m := newExplorer()
	m.SetFocused(false)

	m, cmd := press(m, "down")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.cursor)
}

func TestViewWithoutTree(t *testing.T) {
	m := New()
	assert.Contains(t, m.View(), "No connection")

	m.SetLoading(true)
	assert.Contains(t, m.View(), "Loading")
}
