// ABOUTME: Static text component used for headers and status lines
// ABOUTME: Splits content on newlines and truncates each line to the render width

package component

import (
	"strings"

	"github.com/mauromedda/checktree-go/pkg/tui"
	"github.com/mauromedda/checktree-go/pkg/tui/width"
)

// Text renders static text content.
type Text struct {
	content string
	lines   []string
	dirty   bool
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content, dirty: true}
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	t.content = content
	t.dirty = true
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// Render writes the text lines into the buffer. Empty content renders nothing.
func (t *Text) Render(out *tui.RenderBuffer, w int) {
	if t.dirty {
		t.lines = nil
		if t.content != "" {
			t.lines = strings.Split(t.content, "\n")
		}
		t.dirty = false
	}
	for _, line := range t.lines {
		if w > 0 {
			line = width.TruncateToWidth(line, w)
		}
		out.WriteLine(line)
	}
}

// Invalidate marks the component for re-render.
func (t *Text) Invalidate() {
	t.dirty = true
}
