// ABOUTME: Column-aware truncation and padding for fixed-width tree rows
// ABOUTME: TruncateToWidth appends an ellipsis; styled input gets a reset before it

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// TruncateToWidth cuts s to at most maxWidth columns. When it cuts, the last
// column holds an ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	styled := false
	col := 0
	target := maxWidth - 1
	for i := 0; i < len(s) && col < target; {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			styled = true
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	if styled {
		b.WriteString("\x1b[0m")
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight fills s with spaces up to w columns. Wider input is returned as is.
func PadRight(s string, w int) string {
	gap := w - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
