// ABOUTME: Lipgloss styles for the browser chrome, bridged from the active theme's SGR codes
// ABOUTME: Styles() caches by theme pointer so View() does not reparse escapes every frame

package browse

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/checktree-go/pkg/tui/theme"
)

// ThemeStyles holds the lipgloss styles used around the tree body.
type ThemeStyles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Border  lipgloss.Style
	Match   lipgloss.Style
	Checked lipgloss.Style
	Partial lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

type stylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

var cachedStyles atomic.Pointer[stylesEntry]

// sgrRe matches one SGR sequence such as \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]*)m`)

// Styles returns the styles for the current theme.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t.Palette)
	cachedStyles.Store(&stylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(p theme.Palette) ThemeStyles {
	return ThemeStyles{
		Title:   styleFromSGR(p.Title.Code()),
		Muted:   styleFromSGR(p.Muted.Code()),
		Accent:  styleFromSGR(p.Accent.Code()),
		Border:  styleFromSGR(p.Border.Code()),
		Match:   styleFromSGR(p.Match.Code()),
		Checked: styleFromSGR(p.Checked.Code()),
		Partial: styleFromSGR(p.Partial.Code()),
		Success: styleFromSGR(p.Success.Code()),
		Warning: styleFromSGR(p.Warning.Code()),
		Error:   styleFromSGR(p.Error.Code()),
	}
}

// styleFromSGR folds every SGR sequence in code into one lipgloss style.
// Later sequences win; unknown parameters are ignored.
func styleFromSGR(code string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		for i := 0; i < len(params); i++ {
			n, err := strconv.Atoi(params[i])
			if err != nil {
				continue
			}
			switch {
			case (n == 38 || n == 48) && i+2 < len(params) && params[i+1] == "5":
				c := lipgloss.Color(params[i+2])
				if n == 38 {
					s = s.Foreground(c)
				} else {
					s = s.Background(c)
				}
				i += 2
			case n >= 30 && n <= 37:
				s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 30)))
			case n >= 90 && n <= 97:
				s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 90 + 8)))
			case n >= 40 && n <= 47:
				s = s.Background(lipgloss.Color(strconv.Itoa(n - 40)))
			case n >= 100 && n <= 107:
				s = s.Background(lipgloss.Color(strconv.Itoa(n - 100 + 8)))
			case n == 1:
				s = s.Bold(true)
			case n == 2:
				s = s.Faint(true)
			case n == 3:
				s = s.Italic(true)
			case n == 4:
				s = s.Underline(true)
			case n == 7:
				s = s.Reverse(true)
			}
		}
	}
	return s
}
