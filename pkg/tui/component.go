// ABOUTME: Core rendering contract shared by the terminal tree views
// ABOUTME: Components append width-bounded lines to a pooled RenderBuffer

package tui

// Component is a renderable block of terminal lines.
type Component interface {
	// Render appends the component's lines to out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate drops cached render state so the next Render recomputes it.
	Invalidate()
}

// Sized is implemented by components whose height can be bounded by the host.
type Sized interface {
	SetMaxHeight(h int)
}
