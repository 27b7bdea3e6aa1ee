// ABOUTME: Markdown selection summary for a checkbox tree
// ABOUTME: Lists checked values, partially selected folders, and per-state counts

package report

import (
	"fmt"
	"strings"

	"github.com/mauromedda/checktree-go/pkg/checktree"
)

// Summary counts the nodes of a tree by aggregated state. Checked is shaped
// by the tree's check model; CheckedNodes counts every checked node, folders
// included, so the three state counts add up to Total.
type Summary struct {
	TreeID       string
	Total        int
	Checked      []string
	CheckedNodes int
	Partial      []string
	Unchecked    int
}

// Summarize walks every node of tree in order.
func Summarize(tree *checktree.Tree) Summary {
	s := Summary{
		TreeID:  tree.Options().TreeID,
		Total:   tree.Len(),
		Checked: tree.Checked(),
	}
	for _, v := range tree.Values() {
		st, err := tree.State(v)
		if err != nil {
			continue
		}
		switch st {
		case checktree.Checked:
			s.CheckedNodes++
		case checktree.Partial:
			s.Partial = append(s.Partial, v)
		case checktree.Unchecked:
			s.Unchecked++
		}
	}
	return s
}

// Markdown renders the summary of tree as a markdown document.
func Markdown(tree *checktree.Tree) string {
	s := Summarize(tree)
	var b strings.Builder

	fmt.Fprintf(&b, "# Selection: %s\n\n", s.TreeID)
	fmt.Fprintf(&b, "| State | Nodes |\n|---|---|\n")
	fmt.Fprintf(&b, "| checked | %d |\n", s.CheckedNodes)
	fmt.Fprintf(&b, "| partial | %d |\n", len(s.Partial))
	fmt.Fprintf(&b, "| unchecked | %d |\n", s.Unchecked)
	fmt.Fprintf(&b, "| total | %d |\n", s.Total)

	writeList(&b, tree, "Checked", s.Checked)
	writeList(&b, tree, "Partially selected", s.Partial)
	return b.String()
}

func writeList(b *strings.Builder, tree *checktree.Tree, heading string, values []string) {
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	if len(values) == 0 {
		b.WriteString("_none_\n")
		return
	}
	for _, v := range values {
		label := v
		if d, ok := tree.Get(v); ok {
			label = d.Label
		}
		fmt.Fprintf(b, "- %s (`%s`)\n", escape(label), v)
	}
}

var mdEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
