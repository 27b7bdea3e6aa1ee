// ABOUTME: Semantic color theme types: Color, Palette, Theme for the tree views
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps tree roles to colors

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds all semantic colors for a theme.
type Palette struct {
	// Text
	Primary Color
	Muted   Color
	Accent  Color

	// Tree roles
	Checked    Color
	Partial    Color
	Unchecked  Color
	Folder     Color
	Leaf       Color
	Disclosure Color
	Disabled   Color

	// UI
	Cursor Color
	Match  Color
	Border Color
	Title  Color

	// Semantic
	Success Color
	Warning Color
	Error   Color

	// Formatting
	Bold      Color
	Dim       Color
	Italic    Color
	Underline Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the 16-color palette used when no theme is set.
func DefaultPalette() Palette {
	return Palette{
		Primary: NewColor("\x1b[0m"),
		Muted:   NewColor("\x1b[2m"),
		Accent:  NewColor("\x1b[38;5;208m"),

		Checked:    NewColor("\x1b[32m"),
		Partial:    NewColor("\x1b[33m"),
		Unchecked:  NewColor("\x1b[90m"),
		Folder:     NewColor("\x1b[36m"),
		Leaf:       NewColor("\x1b[37m"),
		Disclosure: NewColor("\x1b[90m"),
		Disabled:   NewColor("\x1b[2m\x1b[90m"),

		Cursor: NewColor("\x1b[7m"),
		Match:  NewColor("\x1b[38;5;208m"),
		Border: NewColor("\x1b[90m"),
		Title:  NewColor("\x1b[1m"),

		Success: NewColor("\x1b[32m"),
		Warning: NewColor("\x1b[33m"),
		Error:   NewColor("\x1b[31m"),

		Bold:      NewColor("\x1b[1m"),
		Dim:       NewColor("\x1b[2m"),
		Italic:    NewColor("\x1b[3m"),
		Underline: NewColor("\x1b[4m"),
	}
}
