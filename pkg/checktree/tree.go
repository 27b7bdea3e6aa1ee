// ABOUTME: Tree is a reference host: owns checked/expanded state and reduces node intents
// ABOUTME: Aggregates TriState from leaves, cascades checks, composes nested <ol> markup

package checktree

import (
	"fmt"
	"io"
	"slices"
	"sync"

	pilog "github.com/mauromedda/checktree-go/internal/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CheckModel picks which values Tree.Checked reports.
type CheckModel uint8

const (
	// CheckLeaf reports checked leaves only.
	CheckLeaf CheckModel = iota
	// CheckAll also reports folders whose aggregate state is Checked.
	CheckAll
)

// String returns "leaf" or "all".
func (m CheckModel) String() string {
	if m == CheckAll {
		return "all"
	}
	return "leaf"
}

// ParseCheckModel accepts "leaf" or "all"; empty means leaf.
func ParseCheckModel(s string) (CheckModel, error) {
	switch s {
	case "", "leaf":
		return CheckLeaf, nil
	case "all":
		return CheckAll, nil
	}
	return CheckLeaf, fmt.Errorf("unknown check model %q (want leaf or all)", s)
}

// TreeOptions configures a Tree. Build with DefaultTreeOptions.
type TreeOptions struct {
	TreeID             string
	OptimisticToggle   bool
	NoCascade          bool
	CheckModel         CheckModel
	OnlyLeafCheckboxes bool
	SingleValueOnly    bool
	ShowNodeIcon       bool
	ExpandDisabled     bool
	Disabled           bool
}

// DefaultTreeOptions cascades checks, treats partial clicks optimistically
// and shows node icons.
func DefaultTreeOptions(treeID string) TreeOptions {
	return TreeOptions{
		TreeID:           treeID,
		OptimisticToggle: true,
		ShowNodeIcon:     true,
	}
}

type flatNode struct {
	desc     Descriptor
	parent   string
	depth    int
	disabled bool
	checked  bool
	expanded bool
}

// Row is one visible node with its depth, in display order.
type Row struct {
	Props Props
	Depth int
}

// Tree holds the state of a whole checkbox tree. It is safe for concurrent
// use: reducers take the write lock, readers the read lock.
type Tree struct {
	mu       sync.RWMutex
	opts     TreeOptions
	roots    []Descriptor
	order    []string
	nodes    map[string]*flatNode
	filter   filterState
	onChange []func(checked []string)
}

// NewTree validates nodes and indexes them by value.
func NewTree(nodes []Descriptor, opts TreeOptions) (*Tree, error) {
	if opts.TreeID == "" {
		return nil, invalid(nil, "treeId", ErrMissingTreeID)
	}
	if err := ValidateDescriptors(nodes); err != nil {
		return nil, err
	}
	t := &Tree{
		opts:  opts,
		roots: nodes,
		nodes: make(map[string]*flatNode),
	}
	t.flatten(nodes, "", 0, false)
	return t, nil
}

// NewTreeFromDocument builds a tree and applies the document's initial state.
// A TreeID in the document wins over the one in opts.
func NewTreeFromDocument(doc *Document, opts TreeOptions) (*Tree, error) {
	if doc.TreeID != "" {
		opts.TreeID = doc.TreeID
	}
	t, err := NewTree(doc.Nodes, opts)
	if err != nil {
		return nil, err
	}
	if err := t.SetChecked(doc.Checked); err != nil {
		return nil, err
	}
	if err := t.SetExpanded(doc.Expanded); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) flatten(nodes []Descriptor, parent string, depth int, parentDisabled bool) {
	for _, d := range nodes {
		disabled := d.Disabled || (parentDisabled && !t.opts.NoCascade)
		t.nodes[d.Value] = &flatNode{
			desc:     d,
			parent:   parent,
			depth:    depth,
			disabled: disabled,
		}
		t.order = append(t.order, d.Value)
		t.flatten(d.Children, d.Value, depth+1, disabled)
	}
}

// Options returns the options the tree was built with.
func (t *Tree) Options() TreeOptions {
	return t.opts
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.order)
}

// Values returns every node value in tree order, ignoring any filter.
func (t *Tree) Values() []string {
	return slices.Clone(t.order)
}

// Get returns the descriptor for value.
func (t *Tree) Get(value string) (Descriptor, bool) {
	n, ok := t.nodes[value]
	if !ok {
		return Descriptor{}, false
	}
	return n.desc, true
}

// OnChange registers fn to run after every change of the checked set.
func (t *Tree) OnChange(fn func(checked []string)) {
	t.mu.Lock()
	t.onChange = append(t.onChange, fn)
	t.mu.Unlock()
}

// State returns the aggregate TriState of value.
func (t *Tree) State(value string) (TriState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.nodes[value]
	if !ok {
		return Unchecked, fmt.Errorf("%w: %q", ErrUnknownValue, value)
	}
	return t.stateLocked(n), nil
}

func (t *Tree) stateLocked(n *flatNode) TriState {
	if t.rawLocked(n) {
		if n.checked {
			return Checked
		}
		return Unchecked
	}

	all, some := true, false
	for _, c := range n.desc.Children {
		switch t.stateLocked(t.nodes[c.Value]) {
		case Checked:
			some = true
		case Partial:
			all, some = false, true
		case Unchecked:
			all = false
		}
	}
	switch {
	case all:
		return Checked
	case some:
		return Partial
	default:
		return Unchecked
	}
}

// HandleCheck is the reducer for CheckIntent.
func (t *Tree) HandleCheck(in CheckIntent) {
	t.mu.Lock()
	n, ok := t.nodes[in.Value]
	if !ok {
		t.mu.Unlock()
		pilog.Warn("tree/check: ignoring intent for unknown value %q", in.Value)
		return
	}
	on := in.Checked
	if t.opts.SingleValueOnly && on {
		for _, other := range t.nodes {
			other.checked = false
		}
	}
	if on && t.cascades() && !t.changesLocked(n, on) {
		// A partial folder whose only unchecked leaves are disabled.
		on = false
	}
	t.toggleLocked(n, on)
	pilog.Debug("tree/check: %q -> %v (cascade=%v)", in.Value, on, t.cascades())
	checked, listeners := t.checkedLocked(), slices.Clone(t.onChange)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(checked)
	}
}

// toggleLocked sets n and, when cascading, every descendant. Disabled
// descendants keep their state.
func (t *Tree) toggleLocked(n *flatNode, on bool) {
	n.checked = on
	if !t.cascades() {
		return
	}
	for _, c := range n.desc.Children {
		child := t.nodes[c.Value]
		if child.disabled && !child.desc.IsFolder() {
			continue
		}
		t.toggleLocked(child, on)
	}
}

// changesLocked reports whether toggleLocked(n, on) would change any state
// that stateLocked reads.
func (t *Tree) changesLocked(n *flatNode, on bool) bool {
	if t.rawLocked(n) {
		return n.checked != on
	}
	for _, c := range n.desc.Children {
		child := t.nodes[c.Value]
		if child.disabled && !child.desc.IsFolder() {
			continue
		}
		if t.changesLocked(child, on) {
			return true
		}
	}
	return false
}

// cascades reports whether folder clicks reach descendants and folder
// states aggregate. Single value trees select exactly the clicked node.
func (t *Tree) cascades() bool {
	return !t.opts.NoCascade && !t.opts.SingleValueOnly
}

// rawLocked reports whether n's state is its own flag rather than an
// aggregate of its children.
func (t *Tree) rawLocked(n *flatNode) bool {
	return !n.desc.IsFolder() || len(n.desc.Children) == 0 || !t.cascades()
}

// HandleExpand is the reducer for ExpandIntent.
func (t *Tree) HandleExpand(in ExpandIntent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[in.Value]
	if !ok {
		pilog.Warn("tree/expand: ignoring intent for unknown value %q", in.Value)
		return
	}
	if !n.desc.IsFolder() {
		return
	}
	n.expanded = in.Expanded
	if !in.Expanded && t.filter.forcesOpen(in.Value) {
		delete(t.filter.open, in.Value)
	}
}

// SetChecked replaces the checked set. Folder values cascade like a click.
func (t *Tree) SetChecked(values []string) error {
	t.mu.Lock()
	targets := make([]*flatNode, 0, len(values))
	for _, v := range values {
		n, ok := t.nodes[v]
		if !ok {
			t.mu.Unlock()
			return fmt.Errorf("setting checked: %w: %q", ErrUnknownValue, v)
		}
		targets = append(targets, n)
	}
	for _, n := range t.nodes {
		n.checked = false
	}
	for _, n := range targets {
		t.toggleLocked(n, true)
	}
	checked, listeners := t.checkedLocked(), slices.Clone(t.onChange)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(checked)
	}
	return nil
}

// Checked returns checked values in tree order, shaped by the CheckModel.
func (t *Tree) Checked() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.checkedLocked()
}

func (t *Tree) checkedLocked() []string {
	out := []string{}
	for _, v := range t.order {
		n := t.nodes[v]
		if !t.cascades() {
			if n.checked {
				out = append(out, v)
			}
			continue
		}
		folder := n.desc.IsFolder()
		if folder && t.opts.CheckModel == CheckLeaf && len(n.desc.Children) > 0 {
			continue
		}
		if t.stateLocked(n) == Checked {
			out = append(out, v)
		}
	}
	return out
}

// SetExpanded replaces the expanded set. Leaf values are rejected.
func (t *Tree) SetExpanded(values []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, v := range values {
		n, ok := t.nodes[v]
		if !ok {
			return fmt.Errorf("setting expanded: %w: %q", ErrUnknownValue, v)
		}
		if !n.desc.IsFolder() {
			return fmt.Errorf("setting expanded: %q is a leaf", v)
		}
	}
	for _, n := range t.nodes {
		n.expanded = false
	}
	for _, v := range values {
		t.nodes[v].expanded = true
	}
	return nil
}

// Expanded returns expanded folder values in tree order.
func (t *Tree) Expanded() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []string{}
	for _, v := range t.order {
		if t.nodes[v].expanded {
			out = append(out, v)
		}
	}
	return out
}

// ExpandAll opens every folder.
func (t *Tree) ExpandAll() {
	t.setAllExpanded(true)
}

// CollapseAll closes every folder.
func (t *Tree) CollapseAll() {
	t.setAllExpanded(false)
}

func (t *Tree) setAllExpanded(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range t.nodes {
		if n.desc.IsFolder() {
			n.expanded = on
		}
	}
}

// PropsFor builds the render props of value from the current state.
func (t *Tree) PropsFor(value string) (Props, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.nodes[value]
	if !ok {
		return Props{}, fmt.Errorf("%w: %q", ErrUnknownValue, value)
	}
	return t.propsLocked(n), nil
}

func (t *Tree) propsLocked(n *flatNode) Props {
	p := DefaultProps(t.opts.TreeID, n.desc.Value, n.desc.Label)
	p.Checked = t.stateLocked(n)
	p.Expanded = n.expanded || t.filter.forcesOpen(n.desc.Value)
	p.Disabled = t.opts.Disabled || n.disabled
	p.ExpandDisabled = t.opts.ExpandDisabled
	p.OptimisticToggle = t.opts.OptimisticToggle
	p.AllowFolderSelector = !t.opts.OnlyLeafCheckboxes
	p.SingleValueOnly = t.opts.SingleValueOnly
	p.ShowNodeIcon = t.opts.ShowNodeIcon
	p.ShowCheckbox = n.desc.ShowCheckbox
	p.ClassName = n.desc.ClassName
	p.RawChildren = n.desc.Children
	if n.desc.Icon != "" {
		p.Icon = textIcon(n.desc.Icon)
	}
	return p
}

// textIcon wraps a descriptor's icon text for both renderers.
func textIcon(glyph string) *Icon {
	span := element(atom.Span, attr("class", "rct-icon rct-icon-custom"))
	span.AppendChild(&html.Node{Type: html.TextNode, Data: glyph})
	return &Icon{Markup: span, Glyph: glyph}
}

// Node binds the props of value to this tree's reducers.
func (t *Tree) Node(value string) (Node, error) {
	p, err := t.PropsFor(value)
	if err != nil {
		return Node{}, err
	}
	return NewNode(p, Handlers{OnCheck: t.HandleCheck, OnExpand: t.HandleExpand}), nil
}

// Visible returns the rows a user can currently see: children of collapsed
// folders are skipped and an active filter hides non-matching branches.
func (t *Tree) Visible() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var rows []Row
	t.visibleLocked(t.roots, &rows)
	return rows
}

func (t *Tree) visibleLocked(nodes []Descriptor, rows *[]Row) {
	for _, d := range nodes {
		if !t.filter.shows(d.Value) {
			continue
		}
		n := t.nodes[d.Value]
		p := t.propsLocked(n)
		*rows = append(*rows, Row{Props: p, Depth: n.depth})
		if p.Expanded {
			t.visibleLocked(d.Children, rows)
		}
	}
}

// RenderHTML composes the full tree: a wrapper div holding nested <ol>
// lists, each <li> produced by the node renderer.
func (t *Tree) RenderHTML() *html.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cls := "react-checkbox-tree"
	if t.opts.Disabled {
		cls += " rct-disabled"
	}
	root := element(atom.Div, attr("class", cls))
	root.AppendChild(t.listLocked(t.roots))
	return root
}

// WriteHTML serializes RenderHTML to w.
func (t *Tree) WriteHTML(w io.Writer) error {
	return html.Render(w, t.RenderHTML())
}

func (t *Tree) listLocked(nodes []Descriptor) *html.Node {
	ol := element(atom.Ol)
	for _, d := range nodes {
		if !t.filter.shows(d.Value) {
			continue
		}
		p := t.propsLocked(t.nodes[d.Value])
		if p.Expanded {
			p.Children = []*html.Node{t.listLocked(d.Children)}
		}
		ol.AppendChild(RenderHTML(p))
	}
	return ol
}

// RenderText renders the visible rows as terminal lines.
func (t *Tree) RenderText(width int, glyphs *Glyphs) []string {
	rows := t.Visible()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = RenderLine(r.Props, LineOptions{Depth: r.Depth, Width: width, Glyphs: glyphs}).String()
	}
	return lines
}
