// ABOUTME: Bubble Tea model for browsing a checkbox tree: cursor, toggles, fuzzy filter
// ABOUTME: Check and expand keys go through checktree nodes; the tree owns all state

package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	pilog "github.com/mauromedda/checktree-go/internal/log"
	"github.com/mauromedda/checktree-go/pkg/checktree"
	"github.com/mauromedda/checktree-go/pkg/tui"
	"github.com/mauromedda/checktree-go/pkg/tui/component"
	"github.com/mauromedda/checktree-go/pkg/tui/width"
)

// chromeLines is the number of rows taken by the header and footer.
const chromeLines = 3

// Options configures the browser.
type Options struct {
	Title  string
	Glyphs *checktree.Glyphs
}

// Model is the root Bubble Tea model.
type Model struct {
	tree   *checktree.Tree
	view   *component.TreeView
	header *component.Text
	body   *tui.Container
	title  string

	width  int
	height int

	filtering bool
	query     string
	status    string
	quitting  bool
}

var _ tea.Model = Model{}

// New creates a Model over tree.
func New(tree *checktree.Tree, opts Options) Model {
	title := opts.Title
	if title == "" {
		title = tree.Options().TreeID
	}
	view := component.NewTreeView(tree, opts.Glyphs)
	header := component.NewText("")
	return Model{
		tree:   tree,
		view:   view,
		header: header,
		body:   tui.NewContainer(view),
		title:  title,
		width:  80,
		height: 24,
		query:  tree.FilterQuery(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Checked returns the tree's current selection.
func (m Model) Checked() []string {
	return m.tree.Checked()
}

// Filtering reports whether the filter prompt has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// Query returns the filter text being edited or applied.
func (m Model) Query() string {
	return m.query
}

// Cursor returns the value of the node under the cursor.
func (m Model) Cursor() string {
	return m.view.CursorValue()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetMaxHeight(m.height - chromeLines)
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.view.MoveUp()
	case "down", "j":
		m.view.MoveDown()
	case "home", "g":
		m.view.Home()
	case "end", "G":
		m.view.End()
	case " ", "x":
		if !m.view.ToggleCheck() {
			m.status = "cannot toggle " + m.view.CursorValue()
		}
	case "enter":
		m.view.ToggleExpand()
	case "right", "l":
		m.view.Expand()
	case "left", "h":
		m.view.Collapse()
	case "E":
		m.tree.ExpandAll()
		m.view.Refresh()
	case "C":
		m.tree.CollapseAll()
		m.view.Refresh()
	case "/":
		m.filtering = true
	case "esc":
		if m.query != "" {
			m.applyFilter("")
		}
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.applyFilter("")
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.applyFilter(string(r[:len(r)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.applyFilter(m.query + string(msg.Runes))
	}
	return m, nil
}

// applyFilter narrows the shared tree and reloads the view rows.
func (m *Model) applyFilter(q string) {
	m.query = q
	n := m.tree.Filter(q)
	m.view.Refresh()
	if q != "" {
		pilog.Debug("browse/filter: %q matched %d nodes", q, n)
		m.status = fmt.Sprintf("%d matches", n)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := Styles()

	checked := m.tree.Checked()
	m.header.SetContent(s.Title.Render(m.title) + "  " + s.Muted.Render(fmt.Sprintf("%d selected", len(checked))))

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	m.header.Render(buf, m.width)
	buf.WriteLine(s.Border.Render(strings.Repeat("─", max(m.width, 1))))
	m.body.Render(buf, m.width)
	if len(m.view.Rows()) == 0 {
		buf.WriteLine(s.Muted.Render("  no matching nodes"))
	}
	buf.WriteLine(width.TruncateToWidth(m.footer(s), m.width))
	return buf.String()
}

func (m Model) footer(s ThemeStyles) string {
	switch {
	case m.filtering:
		return s.Accent.Render("/") + m.query + s.Muted.Render("█")
	case m.status != "":
		return s.Warning.Render(m.status)
	case m.query != "":
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.Match.Render("filter: "+m.query), s.Muted.Render("  esc clears"))
	default:
		return s.Muted.Render("space toggle  enter expand  / filter  q quit")
	}
}
