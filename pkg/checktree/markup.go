// ABOUTME: HTML renderer: builds the rct-* list item for a node as an x/net/html tree
// ABOUTME: Caller-owned nodes (icon, children) are cloned so renders never mutate inputs

package checktree

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS class tokens shared with stylesheets and tests.
const (
	ClassNode         = "rct-node"
	ClassNodeParent   = "rct-node-parent"
	ClassNodeLeaf     = "rct-node-leaf"
	ClassText         = "rct-text"
	ClassCollapse     = "rct-collapse"
	ClassCollapseBtn  = "rct-collapse-btn"
	ClassIcon         = "rct-icon"
	ClassCheckbox     = "rct-checkbox"
	ClassNodeIcon     = "rct-node-icon"
	ClassTitle        = "rct-title"
	iconClassPrefix   = "rct-icon-"
	toggleButtonLabel = "Toggle"
)

// RenderHTML returns the <li> element for p. The fixed child order is
// disclosure control, label (input, checkbox glyph, type icon, title), then
// the children block when expanded.
func RenderHTML(p Props) *html.Node {
	d := Select(p)

	li := element(atom.Li, attr("class", nodeClass(d.Folder, p.ClassName)))
	text := element(atom.Span, attr("class", ClassText))
	li.AppendChild(text)

	text.AppendChild(renderCollapse(d, p.ExpandDisabled))

	id := p.InputID()
	label := element(atom.Label, attr("for", id))
	text.AppendChild(label)
	label.AppendChild(renderInput(p, id))

	if d.ShowCheckbox {
		box := element(atom.Span, attr("class", ClassCheckbox))
		box.AppendChild(iconSpan(d.Checkbox.ClassSuffix(d.CheckboxStyle)))
		label.AppendChild(box)
	}

	if d.ShowIcon {
		wrap := element(atom.Span, attr("class", ClassNodeIcon))
		if d.Icon == IconCustom {
			if p.Icon.Markup != nil {
				wrap.AppendChild(cloneNode(p.Icon.Markup))
			}
		} else {
			wrap.AppendChild(iconSpan(d.Icon.ClassSuffix()))
		}
		label.AppendChild(wrap)
	}

	title := element(atom.Span, attr("class", ClassTitle))
	title.AppendChild(&html.Node{Type: html.TextNode, Data: p.Label})
	label.AppendChild(title)

	if d.ShowChildren {
		for _, c := range p.Children {
			if c != nil {
				li.AppendChild(cloneNode(c))
			}
		}
	}
	return li
}

// WriteHTML serializes the node markup to w.
func WriteHTML(w io.Writer, p Props) error {
	return html.Render(w, RenderHTML(p))
}

// RenderHTMLString is WriteHTML into a string.
func RenderHTMLString(p Props) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = WriteHTML(&b, p)
	return b.String()
}

func nodeClass(folder bool, extra string) string {
	kind := ClassNodeLeaf
	if folder {
		kind = ClassNodeParent
	}
	cls := ClassNode + " " + kind
	if extra != "" {
		cls += " " + extra
	}
	return cls
}

func renderCollapse(d Decisions, expandDisabled bool) *html.Node {
	if !d.Folder {
		wrap := element(atom.Span, attr("class", ClassCollapse))
		wrap.AppendChild(element(atom.Span, attr("class", ClassIcon)))
		return wrap
	}

	attrs := []html.Attribute{
		attr("aria-label", toggleButtonLabel),
		attr("class", ClassCollapse+" "+ClassCollapseBtn),
	}
	if expandDisabled {
		attrs = append(attrs, attr("disabled", ""))
	}
	attrs = append(attrs, attr("title", toggleButtonLabel), attr("type", "button"))
	btn := element(atom.Button, attrs...)
	btn.AppendChild(iconSpan(d.Collapse.ClassSuffix()))
	return btn
}

func renderInput(p Props, id string) *html.Node {
	var attrs []html.Attribute
	if p.Checked == Partial {
		attrs = append(attrs, attr("aria-checked", "mixed"))
	}
	if p.Checked == Checked {
		attrs = append(attrs, attr("checked", ""))
	}
	if p.Disabled {
		attrs = append(attrs, attr("disabled", ""))
	}
	attrs = append(attrs, attr("id", id), attr("type", "checkbox"))
	return element(atom.Input, attrs...)
}

func iconSpan(suffix string) *html.Node {
	cls := ClassIcon
	if suffix != "" {
		cls += " " + iconClassPrefix + suffix
	}
	return element(atom.Span, attr("class", cls))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// cloneNode deep-copies n without its parent and sibling links.
func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
