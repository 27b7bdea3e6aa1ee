// ABOUTME: Fuzzy label filter for Tree: keeps matches plus their ancestors visible
// ABOUTME: Ancestors of matches render expanded while a filter is active

package checktree

import (
	"strings"

	"github.com/mauromedda/checktree-go/pkg/tui/fuzzy"
	"golang.org/x/text/unicode/norm"
)

type filterState struct {
	query   string
	visible map[string]bool // matches and their ancestors
	open    map[string]bool // ancestors of matches
}

func (f filterState) active() bool {
	return f.query != ""
}

func (f filterState) shows(value string) bool {
	return !f.active() || f.visible[value]
}

func (f filterState) forcesOpen(value string) bool {
	return f.active() && f.open[value]
}

// Filter restricts Visible and RenderHTML to nodes whose label fuzzy-matches
// query. An empty query clears the filter. It returns the number of matches.
func (t *Tree) Filter(query string) int {
	query = norm.NFC.String(strings.TrimSpace(query))

	t.mu.Lock()
	defer t.mu.Unlock()
	if query == "" {
		t.filter = filterState{}
		return 0
	}

	labels := make([]string, len(t.order))
	for i, v := range t.order {
		labels[i] = t.nodes[v].desc.Label
	}
	matches := fuzzy.Find(query, labels)

	f := filterState{
		query:   query,
		visible: make(map[string]bool, len(matches)),
		open:    make(map[string]bool),
	}
	for _, m := range matches {
		v := t.order[m.Index]
		f.visible[v] = true
		for p := t.nodes[v].parent; p != ""; p = t.nodes[p].parent {
			f.visible[p] = true
			f.open[p] = true
		}
	}
	t.filter = f
	return len(matches)
}

// FilterQuery returns the active filter, or "".
func (t *Tree) FilterQuery() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filter.query
}
