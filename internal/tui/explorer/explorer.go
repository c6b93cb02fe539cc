package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/dbmeta/internal/app"
	"github.com/joacominatel/dbmeta/internal/tui/theme"
)

// NodeKind identifies the type of a tree node.
type NodeKind int

const (
	NodeDatabase NodeKind = iota
	NodeSchema
	NodeTable
	NodeColumn
)

// TreeNode represents a single node in the schema tree.
type TreeNode struct {
	Kind     NodeKind
	Name     string
	Children []*TreeNode
	Expanded bool
	Loaded   bool // whether children have been fetched

	Schema  string // parent schema name (for tables/columns)
	Table   string // parent table name (for columns)
	SQLType int    // column SQL type code
	KeySeq  int16  // column position in the primary key, 0 if none
}

// flatItem is a visible item in the flattened tree view.
type flatItem struct {
	node  *TreeNode
	depth int
}

// Model is the explorer (schema tree) component.
type Model struct {
	tree    *TreeNode
	items   []flatItem
	cursor  int
	width   int
	height  int
	focused bool
	loading bool
}

// New creates a new explorer model.
func New() Model {
	return Model{}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Focused returns whether the explorer has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(l bool) {
	m.loading = l
}

// SetTree populates the explorer from a schema tree.
func (m *Model) SetTree(schema *app.SchemaTree) {
	root := &TreeNode{
		Kind:     NodeDatabase,
		Name:     schema.Database,
		Expanded: true,
		Loaded:   true,
	}

	for _, s := range schema.Schemas {
		schemaNode := &TreeNode{
			Kind:   NodeSchema,
			Name:   s.Name,
			Loaded: true,
		}
		for _, t := range s.Tables {
			schemaNode.Children = append(schemaNode.Children, &TreeNode{
				Kind:   NodeTable,
				Name:   t,
				Schema: s.Name,
			})
		}
		root.Children = append(root.Children, schemaNode)
	}

	m.tree = root
	m.cursor = 0
	m.flatten()
	m.loading = false
}

// SetTableMetadata replaces the column nodes of a table with the loaded
// metadata.
func (m *Model) SetTableMetadata(meta *app.TableMetadata) {
	m.visitTable(meta.Schema, meta.Table, func(node *TreeNode) {
		node.Children = nil
		for _, col := range meta.Columns {
			node.Children = append(node.Children, &TreeNode{
				Kind:    NodeColumn,
				Name:    col.Name,
				Schema:  meta.Schema,
				Table:   meta.Table,
				SQLType: col.SQLType,
				KeySeq:  col.KeySeq,
			})
		}
		node.Loaded = true
	})
	m.flatten()
}

func (m *Model) visitTable(schema, table string, fn func(*TreeNode)) {
	if m.tree == nil {
		return
	}
	for _, s := range m.tree.Children {
		if s.Name != schema {
			continue
		}
		for _, t := range s.Children {
			if t.Name == table {
				fn(t)
				return
			}
		}
	}
}

// SelectedTable returns the schema and table name of the currently selected table node, if any.
func (m Model) SelectedTable() (schema, table string, ok bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", "", false
	}
	node := m.items[m.cursor].node
	switch node.Kind {
	case NodeTable:
		return node.Schema, node.Name, true
	case NodeColumn:
		return node.Schema, node.Table, true
	}
	return "", "", false
}

// flatten rebuilds the flat item list from the tree.
func (m *Model) flatten() {
	m.items = nil
	if m.tree != nil {
		m.flattenNode(m.tree, 0)
	}
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *Model) flattenNode(node *TreeNode, depth int) {
	m.items = append(m.items, flatItem{node: node, depth: depth})
	if node.Expanded {
		for _, child := range node.Children {
			m.flattenNode(child, depth+1)
		}
	}
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the explorer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", "right", "l":
			return m, m.toggleExpand()
		case "left", "h":
			m.collapse()
		case "r":
			return m, m.reloadSelected()
		}
	}

	return m, nil
}

func (m *Model) toggleExpand() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	node := m.items[m.cursor].node

	if node.Kind == NodeColumn {
		return requestTable(node.Schema, node.Table)
	}

	if node.Expanded {
		node.Expanded = false
		m.flatten()
		return nil
	}

	node.Expanded = true
	m.flatten()

	if node.Kind == NodeTable {
		// Columns arrive with TableMetadata; the details pane shows it too.
		return requestTable(node.Schema, node.Name)
	}

	return nil
}

func (m *Model) collapse() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	node := m.items[m.cursor].node

	if node.Expanded {
		node.Expanded = false
		m.flatten()
	}
}

func (m *Model) reloadSelected() tea.Cmd {
	schema, table, ok := m.SelectedTable()
	if !ok {
		return nil
	}
	return requestTable(schema, table)
}

func requestTable(schema, table string) tea.Cmd {
	return func() tea.Msg {
		return RequestTableMsg{Schema: schema, Table: table}
	}
}

// RequestTableMsg is sent when a table's metadata should be (re)loaded.
type RequestTableMsg struct {
	Schema string
	Table  string
}

// View renders the explorer.
func (m Model) View() string {
	title := theme.StyleTitle.Render("Schema Explorer")

	if m.loading {
		return title + "\n" + theme.StyleMuted.Render("  Loading...")
	}

	if m.tree == nil {
		return title + "\n" + theme.StyleMuted.Render("  No connection")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	visibleHeight := m.height - 2 // title + padding
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	// Scroll offset to keep cursor visible
	scrollOffset := 0
	if m.cursor >= visibleHeight {
		scrollOffset = m.cursor - visibleHeight + 1
	}

	for i := scrollOffset; i < len(m.items) && i < scrollOffset+visibleHeight; i++ {
		b.WriteString(m.renderNode(m.items[i], i == m.cursor))
		if i < scrollOffset+visibleHeight-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderNode(item flatItem, selected bool) string {
	node := item.node
	indent := strings.Repeat("  ", item.depth)

	icon := "  "
	if node.Kind != NodeColumn {
		icon = "▶ "
		if node.Expanded {
			icon = "▼ "
		}
	}

	line := indent + icon + node.Name
	var annotation string
	if node.Kind == NodeColumn {
		annotation = " " + theme.StyleMuted.Render(fmt.Sprintf("(%d)", node.SQLType))
		if node.KeySeq > 0 {
			annotation += " " + theme.StyleKey.Render(fmt.Sprintf("PK%d", node.KeySeq))
		}
	}

	// Truncate the name, keep the annotation
	room := m.width - 2 - lipgloss.Width(annotation)
	if m.width > 0 && room > 2 && lipgloss.Width(line) > room {
		line = truncate(line, room-2) + ".."
	}
	line += annotation

	if selected {
		return theme.StyleSelected.Render(line)
	}

	return line
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
