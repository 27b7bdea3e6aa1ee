// ABOUTME: Node binds immutable Props to host callbacks and turns clicks into intents
// ABOUTME: Holds no state of its own; every call derives its answer from the props snapshot

package checktree

// CheckIntent asks the host to set a node, and by cascade its descendants,
// to Checked. Children is the RawChildren snapshot of the node.
type CheckIntent struct {
	Value    string       `json:"value"`
	Checked  bool         `json:"checked"`
	Children []Descriptor `json:"children"`
}

// ExpandIntent asks the host to open or close a folder.
type ExpandIntent struct {
	Value    string `json:"value"`
	Expanded bool   `json:"expanded"`
}

// Handlers are the host's notification sinks. Return values are never
// consumed; a nil handler drops the intent.
type Handlers struct {
	OnCheck  func(CheckIntent)
	OnExpand func(ExpandIntent)
}

// Node is a stateless view of one tree node.
type Node struct {
	props    Props
	handlers Handlers
}

// NewNode creates a Node for a single render pass.
func NewNode(p Props, h Handlers) Node {
	return Node{props: p, handlers: h}
}

// Props returns the snapshot the node was built from.
func (n Node) Props() Props {
	return n.props
}

// CheckIntent computes the intent a checkbox click produces without emitting it.
func (n Node) CheckIntent() CheckIntent {
	return CheckIntent{
		Value:    n.props.Value,
		Checked:  NextChecked(n.props.Checked, n.props.OptimisticToggle),
		Children: n.props.RawChildren,
	}
}

// ExpandIntent computes the intent a disclosure click produces.
func (n Node) ExpandIntent() ExpandIntent {
	return ExpandIntent{
		Value:    n.props.Value,
		Expanded: !n.props.Expanded,
	}
}

// ToggleCheck handles one checkbox interaction. A disabled input never
// fires, so nothing is emitted and false is returned.
func (n Node) ToggleCheck() bool {
	if n.props.Disabled {
		return false
	}
	if n.handlers.OnCheck != nil {
		n.handlers.OnCheck(n.CheckIntent())
	}
	return true
}

// ToggleExpand handles one disclosure interaction. Leaves render an inert
// placeholder and disabled controls swallow clicks; both return false.
func (n Node) ToggleExpand() bool {
	if !n.props.HasChildren() || n.props.ExpandDisabled {
		return false
	}
	if n.handlers.OnExpand != nil {
		n.handlers.OnExpand(n.ExpandIntent())
	}
	return true
}
