// ABOUTME: Pooled line buffer for terminal rendering; recycled via sync.Pool
// ABOUTME: Hosts acquire one per frame, join it into a view string, then release it

package tui

import (
	"strings"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			Lines: make([]string, 0, 64),
		}
	},
}

// AcquireBuffer gets an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool. Nil is ignored.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer collects the lines of one frame.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends a single line.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends several lines.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// Reset empties the buffer, keeping its capacity.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}

// String joins the lines with newlines, the shape bubbletea views expect.
func (b *RenderBuffer) String() string {
	return strings.Join(b.Lines, "\n")
}
