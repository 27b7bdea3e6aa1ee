// ABOUTME: Terminal rendering of report markdown through glamour
// ABOUTME: Caches rendered output keyed by content hash and width; falls back to raw markdown

package report

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	pilog "github.com/mauromedda/checktree-go/internal/log"
)

// Renderer styles markdown for the terminal.
type Renderer struct {
	mu    sync.Mutex
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewRenderer creates a Renderer. An empty style picks glamour's auto style.
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns md styled for a terminal of the given width.
func (r *Renderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		pilog.Warn("report/render: glamour unavailable: %v", err)
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		pilog.Warn("report/render: %v", err)
		return md
	}
	out = strings.TrimRight(out, "\n ")

	r.mu.Lock()
	r.cache[key] = out
	r.mu.Unlock()
	return out
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
