// ABOUTME: Scrollable checkbox tree component over a checktree.Tree
// ABOUTME: Tracks a cursor by node value; rows are styled segment by segment from the theme

package component

import (
	"strings"

	"github.com/mauromedda/checktree-go/pkg/checktree"
	"github.com/mauromedda/checktree-go/pkg/tui"
	"github.com/mauromedda/checktree-go/pkg/tui/theme"
	"github.com/mauromedda/checktree-go/pkg/tui/width"
)

// TreeView renders the visible rows of a tree and keeps a cursor on one of them.
// Check and expand actions go through the node's toggle policy, never around it.
type TreeView struct {
	tree      *checktree.Tree
	glyphs    *checktree.Glyphs
	rows      []checktree.Row
	cursor    int
	scrollOff int
	maxHeight int
	dirty     bool
}

// NewTreeView creates a TreeView over tree. A nil glyphs uses the defaults.
func NewTreeView(tree *checktree.Tree, glyphs *checktree.Glyphs) *TreeView {
	tv := &TreeView{
		tree:      tree,
		glyphs:    glyphs,
		maxHeight: 100,
	}
	tv.Refresh()
	return tv
}

// Refresh reloads the visible rows, keeping the cursor on the same node when
// it is still visible and clamping it otherwise.
func (tv *TreeView) Refresh() {
	current := tv.CursorValue()
	tv.rows = tv.tree.Visible()
	idx := -1
	for i, r := range tv.rows {
		if r.Props.Value == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = min(tv.cursor, len(tv.rows)-1)
	}
	tv.cursor = max(idx, 0)
	tv.adjustScroll()
	tv.dirty = true
}

// SetMaxHeight limits the number of rendered rows.
func (tv *TreeView) SetMaxHeight(h int) {
	tv.maxHeight = max(h, 1)
	tv.adjustScroll()
	tv.dirty = true
}

// Rows returns the rows as of the last Refresh.
func (tv *TreeView) Rows() []checktree.Row {
	return tv.rows
}

// Cursor returns the cursor index within Rows.
func (tv *TreeView) Cursor() int {
	return tv.cursor
}

// CursorValue returns the value of the node under the cursor, or "" when empty.
func (tv *TreeView) CursorValue() string {
	if tv.cursor < 0 || tv.cursor >= len(tv.rows) {
		return ""
	}
	return tv.rows[tv.cursor].Props.Value
}

// MoveUp moves the cursor one row up.
func (tv *TreeView) MoveUp() {
	tv.moveTo(tv.cursor - 1)
}

// MoveDown moves the cursor one row down.
func (tv *TreeView) MoveDown() {
	tv.moveTo(tv.cursor + 1)
}

// Home moves the cursor to the first row.
func (tv *TreeView) Home() {
	tv.moveTo(0)
}

// End moves the cursor to the last row.
func (tv *TreeView) End() {
	tv.moveTo(len(tv.rows) - 1)
}

func (tv *TreeView) moveTo(i int) {
	if len(tv.rows) == 0 {
		return
	}
	i = max(0, min(i, len(tv.rows)-1))
	if i == tv.cursor {
		return
	}
	tv.cursor = i
	tv.adjustScroll()
	tv.dirty = true
}

func (tv *TreeView) adjustScroll() {
	if tv.cursor < tv.scrollOff {
		tv.scrollOff = tv.cursor
	}
	if tv.cursor >= tv.scrollOff+tv.maxHeight {
		tv.scrollOff = tv.cursor - tv.maxHeight + 1
	}
	tv.scrollOff = max(0, min(tv.scrollOff, len(tv.rows)-tv.maxHeight))
}

// ToggleCheck toggles the checkbox under the cursor. Returns false when the
// node emitted nothing (disabled, or no rows).
func (tv *TreeView) ToggleCheck() bool {
	node, ok := tv.cursorNode()
	if !ok || !node.ToggleCheck() {
		return false
	}
	tv.Refresh()
	return true
}

// ToggleExpand flips the disclosure of the folder under the cursor.
func (tv *TreeView) ToggleExpand() bool {
	node, ok := tv.cursorNode()
	if !ok || !node.ToggleExpand() {
		return false
	}
	tv.Refresh()
	return true
}

// Expand opens a closed folder under the cursor, or steps into an open one.
func (tv *TreeView) Expand() bool {
	if len(tv.rows) == 0 {
		return false
	}
	p := tv.rows[tv.cursor].Props
	if !p.HasChildren() {
		return false
	}
	if !p.Expanded {
		return tv.ToggleExpand()
	}
	if tv.cursor+1 < len(tv.rows) && tv.rows[tv.cursor+1].Depth > tv.rows[tv.cursor].Depth {
		tv.MoveDown()
		return true
	}
	return false
}

// Collapse closes an open folder under the cursor, or moves to the parent row.
func (tv *TreeView) Collapse() bool {
	if len(tv.rows) == 0 {
		return false
	}
	row := tv.rows[tv.cursor]
	if row.Props.HasChildren() && row.Props.Expanded {
		return tv.ToggleExpand()
	}
	for i := tv.cursor - 1; i >= 0; i-- {
		if tv.rows[i].Depth < row.Depth {
			tv.moveTo(i)
			return true
		}
	}
	return false
}

func (tv *TreeView) cursorNode() (checktree.Node, bool) {
	value := tv.CursorValue()
	if value == "" {
		return checktree.Node{}, false
	}
	node, err := tv.tree.Node(value)
	if err != nil {
		return checktree.Node{}, false
	}
	return node, true
}

// Invalidate reloads rows on the next Render.
func (tv *TreeView) Invalidate() {
	tv.dirty = true
}

// Render writes the rows inside the viewport into the buffer.
func (tv *TreeView) Render(out *tui.RenderBuffer, w int) {
	if tv.dirty {
		tv.Refresh()
		tv.dirty = false
	}
	end := min(tv.scrollOff+tv.maxHeight, len(tv.rows))
	for i := tv.scrollOff; i < end; i++ {
		out.WriteLine(tv.formatRow(tv.rows[i], w, i == tv.cursor))
	}
}

func (tv *TreeView) formatRow(r checktree.Row, w int, selected bool) string {
	line := checktree.RenderLine(r.Props, checktree.LineOptions{Depth: r.Depth, Width: w, Glyphs: tv.glyphs})
	p := theme.Current().Palette

	if selected {
		return p.Cursor.Apply(width.PadRight(line.String(), w))
	}
	if r.Props.Disabled {
		return p.Disabled.Apply(line.String())
	}

	styled := checktree.Line{
		Indent:   line.Indent,
		Collapse: styleIf(p.Disclosure, line.Collapse),
		Label:    line.Label,
	}
	if line.Checkbox != "" {
		styled.Checkbox = stateColor(p, r.Props.Checked).Apply(line.Checkbox)
	}
	if line.Icon != "" {
		c := p.Leaf
		if r.Props.HasChildren() {
			c = p.Folder
		}
		styled.Icon = c.Apply(line.Icon)
	}
	if r.Props.HasChildren() {
		styled.Label = p.Folder.Apply(line.Label)
	}
	return styled.String()
}

func stateColor(p theme.Palette, s checktree.TriState) theme.Color {
	switch s {
	case checktree.Checked:
		return p.Checked
	case checktree.Partial:
		return p.Partial
	default:
		return p.Unchecked
	}
}

// styleIf leaves blank segments unstyled so placeholders stay invisible.
func styleIf(c theme.Color, s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return c.Apply(s)
}
