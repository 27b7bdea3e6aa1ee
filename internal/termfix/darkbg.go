// ABOUTME: Fixes lipgloss to a dark background before bubbletea's init() can query the terminal
// ABOUTME: Imported for side effects by the CLI ahead of the browser packages

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With the background already known, lipgloss skips its OSC 10/11 query,
	// whose late reply would otherwise land in the browser's filter prompt.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}
