// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary: NewColor("\x1b[97m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[38;5;214m"),

			Checked:    NewColor("\x1b[38;5;114m"),
			Partial:    NewColor("\x1b[38;5;221m"),
			Unchecked:  NewColor("\x1b[38;5;245m"),
			Folder:     NewColor("\x1b[38;5;117m"),
			Leaf:       NewColor("\x1b[38;5;252m"),
			Disclosure: NewColor("\x1b[38;5;240m"),
			Disabled:   NewColor("\x1b[38;5;238m"),

			Cursor: NewColor("\x1b[48;5;236m"),
			Match:  NewColor("\x1b[38;5;214m"),
			Border: NewColor("\x1b[38;5;240m"),
			Title:  NewColor("\x1b[1m\x1b[97m"),

			Success: NewColor("\x1b[38;5;114m"),
			Warning: NewColor("\x1b[38;5;221m"),
			Error:   NewColor("\x1b[38;5;203m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary: NewColor("\x1b[30m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[38;5;166m"),

			Checked:    NewColor("\x1b[38;5;28m"),
			Partial:    NewColor("\x1b[38;5;130m"),
			Unchecked:  NewColor("\x1b[38;5;244m"),
			Folder:     NewColor("\x1b[38;5;25m"),
			Leaf:       NewColor("\x1b[38;5;236m"),
			Disclosure: NewColor("\x1b[38;5;249m"),
			Disabled:   NewColor("\x1b[38;5;250m"),

			Cursor: NewColor("\x1b[48;5;254m"),
			Match:  NewColor("\x1b[38;5;166m"),
			Border: NewColor("\x1b[38;5;249m"),
			Title:  NewColor("\x1b[1m\x1b[30m"),

			Success: NewColor("\x1b[38;5;28m"),
			Warning: NewColor("\x1b[38;5;130m"),
			Error:   NewColor("\x1b[38;5;160m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary: NewColor("\x1b[0m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[1m"),

			Checked:    NewColor("\x1b[1m"),
			Partial:    NewColor("\x1b[4m"),
			Unchecked:  NewColor("\x1b[0m"),
			Folder:     NewColor("\x1b[1m"),
			Leaf:       NewColor("\x1b[0m"),
			Disclosure: NewColor("\x1b[2m"),
			Disabled:   NewColor("\x1b[2m"),

			Cursor: NewColor("\x1b[7m"),
			Match:  NewColor("\x1b[1m\x1b[4m"),
			Border: NewColor("\x1b[2m"),
			Title:  NewColor("\x1b[1m"),

			Success: NewColor("\x1b[1m"),
			Warning: NewColor("\x1b[1m"),
			Error:   NewColor("\x1b[1m\x1b[4m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
