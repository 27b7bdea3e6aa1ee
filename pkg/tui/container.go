// ABOUTME: Container stacks child Components vertically in insertion order
// ABOUTME: Guarded by an RWMutex so a render can overlap with a Set from another goroutine

package tui

import "sync"

// Container renders its children one after another.
type Container struct {
	mu       sync.RWMutex
	children []Component
}

// NewContainer creates a Container holding children.
func NewContainer(children ...Component) *Container {
	return &Container{children: children}
}

// Add appends a child.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	c.children = append(c.children, comp)
	c.mu.Unlock()
}

// Set replaces all children.
func (c *Container) Set(children ...Component) {
	c.mu.Lock()
	c.children = append(c.children[:0:0], children...)
	c.mu.Unlock()
}

// Children returns a snapshot of the children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Render renders every child into out.
func (c *Container) Render(out *RenderBuffer, width int) {
	for _, child := range c.Children() {
		child.Render(out, width)
	}
}

// Invalidate invalidates every child.
func (c *Container) Invalidate() {
	for _, child := range c.Children() {
		child.Invalidate()
	}
}
