package grove

// Component is a typed attachment on a Node providing behavior or data.
// A component belongs to at most one node at a time; its lifetime is bounded
// by the owning node's. Concrete components embed BaseComponent to satisfy
// this interface.
type Component interface {
	// Owner returns the node this component is attached to, or nil.
	Owner() *Node

	setOwner(n *Node)
}

// BaseComponent carries the owner bookkeeping shared by all components.
// Embed it (by pointer receiver semantics, so components are used as
// pointers) in every component struct.
type BaseComponent struct {
	owner *Node
}

// Owner returns the node this component is attached to, or nil.
func (b *BaseComponent) Owner() *Node {
	return b.owner
}

func (b *BaseComponent) setOwner(n *Node) {
	b.owner = n
}

// --- Attachment ---

// AddComponent attaches c to this node, appending it to the node's component
// list (the order components are added is the order queries see them).
// Panics if c is nil or already attached to a node.
func (n *Node) AddComponent(c Component) {
	if c == nil {
		panic("grove: cannot add nil component")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddComponent")
	}
	if c.Owner() != nil {
		panic("grove: component is already attached to a node")
	}
	c.setOwner(n)
	n.components = append(n.components, c)
	emit(n, HierarchyEvent{Type: EventComponentAttached, Node: n, Component: c})
}

// RemoveComponent detaches c from this node.
// Panics if c is not attached to this node.
func (n *Node) RemoveComponent(c Component) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveComponent")
	}
	if c == nil || c.Owner() != n {
		panic("grove: component is not attached to this node")
	}
	emit(n, HierarchyEvent{Type: EventComponentDetached, Node: n, Component: c})
	for i, have := range n.components {
		if have == c {
			copy(n.components[i:], n.components[i+1:])
			n.components[len(n.components)-1] = nil
			n.components = n.components[:len(n.components)-1]
			break
		}
	}
	c.setOwner(nil)
}

// Components returns the component list. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// NumComponents returns the number of attached components.
func (n *Node) NumComponents() int {
	return len(n.components)
}

// ComponentAt returns the component at the given index.
func (n *Node) ComponentAt(index int) Component {
	return n.components[index]
}

// --- Typed lookup ---

// ComponentOf returns the first component on n satisfying T, in attachment
// order. The second return value reports whether a match was found.
func ComponentOf[T any](n *Node) (T, bool) {
	for _, c := range n.components {
		if m, ok := c.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// ComponentsOf returns every component on n satisfying T, in attachment
// order. Only n itself is inspected; use CollectAll for subtrees.
func ComponentsOf[T any](n *Node) []T {
	var out []T
	for _, c := range n.components {
		if m, ok := c.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

// EnsureComponent returns the first component on n satisfying T, attaching
// a freshly created one (via create) when none exists. The second return
// value reports whether the component was created by this call, so callers
// can distinguish discovery from creation; ignore it if you don't care.
func EnsureComponent[T Component](n *Node, create func() T) (T, bool) {
	if found, ok := ComponentOf[T](n); ok {
		return found, false
	}
	c := create()
	n.AddComponent(c)
	return c, true
}
