// ABOUTME: JSON theme file loading and name resolution for the -theme flag
// ABOUTME: Unset palette fields inherit from DefaultPalette so partial files stay usable

package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// ErrUnknownTheme is returned by Resolve when a name is neither built in nor a file.
var ErrUnknownTheme = errors.New("unknown theme")

// jsonPalette is the JSON-friendly representation of a Palette.
// Field names must match Palette's; tags use snake_case.
type jsonPalette struct {
	Primary string `json:"primary"`
	Muted   string `json:"muted"`
	Accent  string `json:"accent"`

	Checked    string `json:"checked"`
	Partial    string `json:"partial"`
	Unchecked  string `json:"unchecked"`
	Folder     string `json:"folder"`
	Leaf       string `json:"leaf"`
	Disclosure string `json:"disclosure"`
	Disabled   string `json:"disabled"`

	Cursor string `json:"cursor"`
	Match  string `json:"match"`
	Border string `json:"border"`
	Title  string `json:"title"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	Bold      string `json:"bold"`
	Dim       string `json:"dim"`
	Italic    string `json:"italic"`
	Underline string `json:"underline"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if jt.Name == "" {
		jt.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the built-in theme called name, or loads name as a theme
// file when it ends in .json. An empty name yields the default theme.
func Resolve(name string) (*Theme, error) {
	if name == "" {
		return Builtin("default"), nil
	}
	if th := Builtin(name); th != nil {
		return th, nil
	}
	if strings.HasSuffix(name, ".json") {
		return LoadFile(name)
	}
	return nil, fmt.Errorf("%w %q (built-in: %s)", ErrUnknownTheme, name, strings.Join(BuiltinNames(), ", "))
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		code := jpv.Field(i).String()
		if code == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(code)))
		}
	}

	return p
}
