package details

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/dbmeta/internal/app"
	"github.com/joacominatel/dbmeta/internal/database"
	"github.com/joacominatel/dbmeta/internal/tui/theme"
)

var headers = []string{"Column", "Key", "Type code", "SQL type", "Declared", "Null"}

const maxColWidth = 40

// WriteClipboard is the clipboard sink; replaced in tests.
var WriteClipboard = clipboard.WriteAll

// Model is the table details component: one row per column with its key
// sequence and SQL type code.
type Model struct {
	meta      *app.TableMetadata
	rows      [][]string
	err       error
	width     int
	height    int
	focused   bool
	loading   bool
	cursor    int
	scrollY   int
	colWidths []int
	status    string
}

// New creates a new details model.
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

// Focused returns whether the details pane has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(l bool) {
	m.loading = l
}

// SetTable sets the table metadata to display.
func (m *Model) SetTable(meta *app.TableMetadata) {
	m.meta = meta
	m.err = nil
	m.cursor = 0
	m.scrollY = 0
	m.loading = false
	m.status = ""
	m.rows = buildRows(meta)
	m.calculateColumnWidths()
}

// SetError sets an error to display.
func (m *Model) SetError(err error) {
	m.err = err
	m.meta = nil
	m.rows = nil
	m.cursor = 0
	m.scrollY = 0
	m.loading = false
}

// Table returns the displayed metadata, nil when none is loaded.
func (m Model) Table() *app.TableMetadata {
	return m.meta
}

// Status returns the result of the last copy action.
func (m Model) Status() string {
	return m.status
}

func buildRows(meta *app.TableMetadata) [][]string {
	if meta == nil {
		return nil
	}
	rows := make([][]string, 0, len(meta.Columns))
	for _, col := range meta.Columns {
		key := ""
		if col.KeySeq > 0 {
			key = strconv.Itoa(int(col.KeySeq))
		}
		null := "NO"
		if col.Nullable {
			null = "YES"
		}
		rows = append(rows, []string{
			col.Name,
			key,
			strconv.Itoa(col.SQLType),
			database.TypeName(col.SQLType),
			col.TypeName,
			null,
		})
	}
	return rows
}

func (m *Model) calculateColumnWidths() {
	m.colWidths = make([]int, len(headers))
	for i, h := range headers {
		m.colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range m.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > m.colWidths[i] {
				m.colWidths[i] = w
			}
		}
	}
	for i := range m.colWidths {
		m.colWidths[i] = min(m.colWidths[i], maxColWidth)
	}
}

// Init returns the initial command (none).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details pane.
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
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "pgup":
			m.cursor = max(0, m.cursor-m.pageSize())
		case "pgdown":
			m.cursor = max(0, min(len(m.rows)-1, m.cursor+m.pageSize()))
		case "y":
			m.copyTypeCode()
		case "Y":
			m.copyPrimaryKeys()
		}
		m.keepCursorVisible()
	}

	return m, nil
}

func (m Model) pageSize() int {
	return max(1, m.visibleRows()/2)
}

func (m Model) visibleRows() int {
	return max(1, m.height-4)
}

func (m *Model) keepCursorVisible() {
	visible := m.visibleRows()
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+visible {
		m.scrollY = m.cursor - visible + 1
	}
}

func (m *Model) copyTypeCode() {
	if m.meta == nil || m.cursor < 0 || m.cursor >= len(m.meta.Columns) {
		m.status = "Nothing to copy"
		return
	}
	col := m.meta.Columns[m.cursor]
	code := strconv.Itoa(col.SQLType)
	if err := WriteClipboard(code); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Copied %s type code %s", col.Name, code)
}

func (m *Model) copyPrimaryKeys() {
	if m.meta == nil {
		m.status = "Nothing to copy"
		return
	}
	keys := m.meta.PrimaryKeys
	if keys == nil {
		keys = map[string]int16{}
	}
	data, err := json.Marshal(keys)
	if err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	if err := WriteClipboard(string(data)); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied primary key map as JSON"
}

// View renders the details pane.
func (m Model) View() string {
	title := theme.StyleTitle.Render("Details")

	if m.loading {
		return title + "\n" + theme.StyleMuted.Render("  Loading metadata...")
	}

	if m.err != nil {
		return title + "\n" + theme.StyleError.Render("  Error: "+m.err.Error())
	}

	if m.meta == nil {
		return title + "\n" + theme.StyleMuted.Render("  Select a table to see its keys and types")
	}

	name := m.meta.Table
	if m.meta.Schema != "" {
		name = m.meta.Schema + "." + m.meta.Table
	}
	summary := fmt.Sprintf("%d column(s) | key: %s", len(m.rows), keySummary(m.meta))

	var b strings.Builder
	b.WriteString(title + " " + name + "  " + theme.StyleMuted.Render(summary))
	b.WriteString("\n")
	b.WriteString(m.renderRow(headers, true, false))
	b.WriteString("\n")
	b.WriteString(m.renderSeparator())

	visible := m.visibleRows()
	for i := m.scrollY; i < len(m.rows) && i < m.scrollY+visible; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(m.rows[i], false, m.focused && i == m.cursor))
	}

	return b.String()
}

func keySummary(meta *app.TableMetadata) string {
	cols := meta.KeyColumns()
	if len(cols) == 0 {
		return "none"
	}
	return strings.Join(cols, ", ")
}

func (m Model) renderRow(cells []string, isHeader, selected bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		width := m.colWidths[i]
		display := cell
		if lipgloss.Width(display) > width {
			display = truncate(display, width-1) + "…"
		}
		if pad := width - lipgloss.Width(display); pad > 0 {
			display += strings.Repeat(" ", pad)
		}

		switch {
		case isHeader:
			parts[i] = theme.StyleHeader.Render(display)
		case i == 1 && cell != "":
			parts[i] = theme.StyleKey.Render(display)
		default:
			parts[i] = display
		}
	}

	line := strings.Join(parts, " │ ")
	if selected {
		return theme.StyleSelected.Render("> ") + line
	}
	return "  " + line
}

func (m Model) renderSeparator() string {
	parts := make([]string, len(m.colWidths))
	for i, w := range m.colWidths {
		parts[i] = strings.Repeat("─", w)
	}
	return "  " + lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(strings.Join(parts, "─┼─"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
