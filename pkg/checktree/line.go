// ABOUTME: Terminal renderer: one text row per node built from the same render decisions
// ABOUTME: Segments stay separate so callers can style each one; String joins them

package checktree

import (
	"strings"

	"github.com/mauromedda/checktree-go/pkg/tui/width"
)

// Glyphs is the terminal glyph set for every render variant.
type Glyphs struct {
	CollapsePlaceholder string
	CollapseClosed      string
	CollapseOpen        string

	Check       [3]string // indexed by CheckboxGlyph
	Radio       [3]string
	Leaf        string
	ParentOpen  string
	ParentClose string

	Indent string
}

// DefaultGlyphs works on any UTF-8 terminal without patched fonts.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		CollapsePlaceholder: " ",
		CollapseClosed:      "▸",
		CollapseOpen:        "▾",
		Check:               [3]string{"[ ]", "[x]", "[-]"},
		Radio:               [3]string{"( )", "(•)", "(-)"},
		Leaf:                "·",
		ParentClose:         "▪",
		ParentOpen:          "▫",
		Indent:              "  ",
	}
}

// LineOptions places a row inside the host's layout.
type LineOptions struct {
	Depth  int
	Width  int // 0 disables truncation
	Glyphs *Glyphs
}

// Line is a rendered row split into its segments. Empty segments were
// suppressed by the render decisions.
type Line struct {
	Indent   string
	Collapse string
	Checkbox string
	Icon     string
	Label    string
}

// String joins the non-empty segments with single spaces after the indent.
func (l Line) String() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{l.Collapse, l.Checkbox, l.Icon, l.Label} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return l.Indent + strings.Join(parts, " ")
}

// RenderLine renders p as a terminal row. Children are not part of the row;
// hosts emit child rows themselves when Select(p).ShowChildren is true.
func RenderLine(p Props, opts LineOptions) Line {
	g := opts.Glyphs
	if g == nil {
		def := DefaultGlyphs()
		g = &def
	}
	d := Select(p)

	line := Line{
		Indent: strings.Repeat(g.Indent, max(opts.Depth, 0)),
		Label:  p.Label,
	}

	switch d.Collapse {
	case CollapsePlaceholder:
		line.Collapse = g.CollapsePlaceholder
	case CollapseClosed:
		line.Collapse = g.CollapseClosed
	case CollapseOpen:
		line.Collapse = g.CollapseOpen
	}

	if d.ShowCheckbox {
		set := g.Check
		if d.CheckboxStyle == StyleRadio {
			set = g.Radio
		}
		line.Checkbox = set[d.Checkbox]
	}

	if d.ShowIcon {
		switch d.Icon {
		case IconCustom:
			line.Icon = p.Icon.Glyph
		case IconLeaf:
			line.Icon = g.Leaf
		case IconParentClose:
			line.Icon = g.ParentClose
		case IconParentOpen:
			line.Icon = g.ParentOpen
		}
	}

	if opts.Width > 0 {
		prefix := Line{Indent: line.Indent, Collapse: line.Collapse, Checkbox: line.Checkbox, Icon: line.Icon}
		room := opts.Width - width.VisibleWidth(prefix.String()) - 1
		line.Label = width.TruncateToWidth(line.Label, max(room, 1))
	}
	return line
}
