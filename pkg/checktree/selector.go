// ABOUTME: Render selector: closed enums for the four visual decisions of a node
// ABOUTME: Select derives all of them from Props; exhaustive switches keep each mapping total

package checktree

// CollapseGlyph is the disclosure control variant.
type CollapseGlyph uint8

const (
	CollapsePlaceholder CollapseGlyph = iota // leaf: inert, keeps layout
	CollapseClosed
	CollapseOpen
)

// CheckboxGlyph is the checkbox icon variant.
type CheckboxGlyph uint8

const (
	GlyphUnchecked CheckboxGlyph = iota
	GlyphChecked
	GlyphHalfChecked
)

// CheckboxStyle picks radio or checkbox visuals; it never changes state semantics.
type CheckboxStyle uint8

const (
	StyleCheck CheckboxStyle = iota
	StyleRadio
)

// NodeIcon is the type icon variant.
type NodeIcon uint8

const (
	IconCustom NodeIcon = iota
	IconLeaf
	IconParentClose
	IconParentOpen
)

// Decisions is everything the renderers need, derived once per render.
type Decisions struct {
	Folder              bool
	Collapse            CollapseGlyph
	CollapseInteractive bool
	Checkbox            CheckboxGlyph
	CheckboxStyle       CheckboxStyle
	ShowCheckbox        bool
	Icon                NodeIcon
	ShowIcon            bool
	ShowChildren        bool
}

// Select maps props to render decisions. It is pure and total.
func Select(p Props) Decisions {
	folder := p.HasChildren()
	return Decisions{
		Folder:              folder,
		Collapse:            CollapseGlyphFor(folder, p.Expanded),
		CollapseInteractive: folder && !p.ExpandDisabled,
		Checkbox:            CheckboxGlyphFor(p.Checked),
		CheckboxStyle:       CheckboxStyleFor(p.SingleValueOnly),
		ShowCheckbox:        showCheckbox(p, folder),
		Icon:                NodeIconFor(p.Icon != nil, folder, p.Expanded),
		ShowIcon:            p.ShowNodeIcon,
		ShowChildren:        p.Expanded,
	}
}

// showCheckbox applies the node's own override before the folder selector rule.
func showCheckbox(p Props, folder bool) bool {
	if p.ShowCheckbox != nil {
		return *p.ShowCheckbox
	}
	return !folder || p.AllowFolderSelector
}

// CollapseGlyphFor picks the disclosure variant.
func CollapseGlyphFor(folder, expanded bool) CollapseGlyph {
	switch {
	case !folder:
		return CollapsePlaceholder
	case expanded:
		return CollapseOpen
	default:
		return CollapseClosed
	}
}

// CheckboxGlyphFor is total over every TriState, leaf or folder. Out of range
// ordinals render as unchecked; Props.Validate rejects them upstream.
func CheckboxGlyphFor(state TriState) CheckboxGlyph {
	switch state {
	case Checked:
		return GlyphChecked
	case Partial:
		return GlyphHalfChecked
	case Unchecked:
		return GlyphUnchecked
	}
	return GlyphUnchecked
}

// CheckboxStyleFor maps the single-value flag to the radio style.
func CheckboxStyleFor(singleValueOnly bool) CheckboxStyle {
	if singleValueOnly {
		return StyleRadio
	}
	return StyleCheck
}

// NodeIconFor applies the precedence custom > leaf > parent open/close.
func NodeIconFor(custom, folder, expanded bool) NodeIcon {
	switch {
	case custom:
		return IconCustom
	case !folder:
		return IconLeaf
	case expanded:
		return IconParentOpen
	default:
		return IconParentClose
	}
}

// ClassSuffix returns the rct-icon class tail for the collapse glyph; the
// placeholder has none.
func (g CollapseGlyph) ClassSuffix() string {
	switch g {
	case CollapseClosed:
		return "expand-close"
	case CollapseOpen:
		return "expand-open"
	case CollapsePlaceholder:
		return ""
	}
	return ""
}

// ClassSuffix joins the glyph variant and the style, e.g. "half-check" or "unradio".
func (g CheckboxGlyph) ClassSuffix(style CheckboxStyle) string {
	kind := "check"
	if style == StyleRadio {
		kind = "radio"
	}
	switch g {
	case GlyphUnchecked:
		return "un" + kind
	case GlyphChecked:
		return kind
	case GlyphHalfChecked:
		return "half-" + kind
	}
	return "un" + kind
}

// ClassSuffix returns the rct-icon class tail for computed icons. IconCustom
// has none: the caller's markup is used verbatim.
func (i NodeIcon) ClassSuffix() string {
	switch i {
	case IconLeaf:
		return "leaf"
	case IconParentClose:
		return "parent-close"
	case IconParentOpen:
		return "parent-open"
	case IconCustom:
		return ""
	}
	return ""
}

func (g CheckboxGlyph) String() string {
	switch g {
	case GlyphUnchecked:
		return "unchecked"
	case GlyphChecked:
		return "checked"
	case GlyphHalfChecked:
		return "half-checked"
	}
	return "unknown"
}

func (i NodeIcon) String() string {
	if i == IconCustom {
		return "custom"
	}
	return i.ClassSuffix()
}
