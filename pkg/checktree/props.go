// ABOUTME: Props is the immutable per-render input of a tree node, supplied by the host tree
// ABOUTME: Descriptor is the recursive child shape; nil Children marks a leaf, [] an empty folder

package checktree

import (
	"fmt"

	"golang.org/x/net/html"
)

// Descriptor describes one node of the tree as loaded from a file or built
// by a host. A nil Children slice is the leaf marker; a non-nil empty slice
// is a folder whose entries are not materialized yet.
type Descriptor struct {
	Value     string       `json:"value" yaml:"value"`
	Label     string       `json:"label" yaml:"label"`
	Children  []Descriptor `json:"children" yaml:"children"`
	Icon      string       `json:"icon,omitempty" yaml:"icon,omitempty"`
	Disabled  bool         `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ClassName string       `json:"className,omitempty" yaml:"className,omitempty"`

	// ShowCheckbox overrides checkbox visibility for this node; nil keeps
	// the tree-wide folder selector rule.
	ShowCheckbox *bool `json:"showCheckbox,omitempty" yaml:"showCheckbox,omitempty"`
}

// IsFolder reports whether d carries a children list, empty or not.
func (d Descriptor) IsFolder() bool {
	return d.Children != nil
}

// Icon overrides the computed leaf/folder icon. Markup is used by the HTML
// renderer and Glyph by the terminal renderer; either may be empty.
type Icon struct {
	Markup *html.Node
	Glyph  string
}

// Props holds everything a node needs to render. The zero value is not
// usable: build with DefaultProps so the named defaults are applied.
type Props struct {
	TreeID string
	Value  string
	Label  string

	Checked        TriState
	Expanded       bool
	Disabled       bool
	ExpandDisabled bool

	OptimisticToggle    bool
	AllowFolderSelector bool
	SingleValueOnly     bool
	ShowNodeIcon        bool
	ShowCheckbox        *bool

	Icon        *Icon
	ClassName   string
	RawChildren []Descriptor

	// Children is the already rendered subtree, revealed only when Expanded.
	Children []*html.Node
}

// DefaultProps returns props for a leaf with the documented defaults:
// folder selector allowed, node icons shown, no custom icon, no children.
func DefaultProps(treeID, value, label string) Props {
	return Props{
		TreeID:              treeID,
		Value:               value,
		Label:               label,
		Checked:             Unchecked,
		AllowFolderSelector: true,
		ShowNodeIcon:        true,
	}
}

// HasChildren classifies the node as a folder. Only presence of RawChildren
// counts, never its length.
func (p Props) HasChildren() bool {
	return p.RawChildren != nil
}

// InputID is the identifier shared by the checkbox input and its label.
func (p Props) InputID() string {
	return InputID(p.TreeID, p.Value)
}

// InputID joins the tree scope and the node value.
func InputID(treeID, value string) string {
	return treeID + "-" + value
}

// Validate rejects props that break the host contract instead of letting
// the renderer draw a visibly wrong node.
func (p Props) Validate() error {
	path := []string{p.Value}
	switch {
	case p.TreeID == "":
		return invalid(path, "treeId", ErrMissingTreeID)
	case p.Value == "":
		return invalid(nil, "value", ErrMissingValue)
	case p.Label == "":
		return invalid(path, "label", ErrMissingLabel)
	case !p.Checked.Valid():
		return invalid(path, "checked", fmt.Errorf("%w: ordinal %d", ErrInvalidState, uint8(p.Checked)))
	case p.Checked == Partial && !p.HasChildren():
		return invalid(path, "checked", ErrPartialLeaf)
	}
	if err := validateDescriptors(p.RawChildren, path, make(map[string]struct{})); err != nil {
		return err
	}
	return nil
}

// ValidateDescriptors checks a descriptor forest: every node needs a value
// and a label, and values must be unique across the whole forest.
func ValidateDescriptors(nodes []Descriptor) error {
	return validateDescriptors(nodes, nil, make(map[string]struct{}))
}

func validateDescriptors(nodes []Descriptor, parent []string, seen map[string]struct{}) error {
	for i, n := range nodes {
		if n.Value == "" {
			return invalid(parent, fmt.Sprintf("children[%d].value", i), ErrMissingValue)
		}
		path := append(parent[:len(parent):len(parent)], n.Value)
		if n.Label == "" {
			return invalid(path, "label", ErrMissingLabel)
		}
		if _, dup := seen[n.Value]; dup {
			return invalid(path, "value", ErrDuplicateValue)
		}
		seen[n.Value] = struct{}{}
		if err := validateDescriptors(n.Children, path, seen); err != nil {
			return err
		}
	}
	return nil
}
