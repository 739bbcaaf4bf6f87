package grove

// nodeIDCounter is a plain counter (no atomic — grove is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element: a named vertex in the tree
// that owns its children and its attached components. The parent pointer is
// a non-owning back-reference used only for upward traversal and paths.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Active controls whether active-only traversals visit this node.
	// An inactive node blocks its entire subtree, regardless of the
	// descendants' own flags. Prefer SetActive when an attached
	// HierarchyStore should observe the change.
	Active bool

	// Metadata
	UserData any

	// Attachments
	components []Component

	// Internal
	store    HierarchyStore // inherited from the parent on AddChild
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Active = true
}

// NewNode creates a node with the given name and no components.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("grove: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("grove: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	setSubtreeStore(child, n.store)
	emit(n, HierarchyEvent{Type: EventNodeAdded, Node: child, Parent: n})
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("grove: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("grove: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("grove: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	setSubtreeStore(child, n.store)
	emit(n, HierarchyEvent{Type: EventNodeAdded, Node: child, Parent: n})
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("grove: child's parent is not this node")
	}
	emit(n, HierarchyEvent{Type: EventNodeRemoved, Node: child, Parent: n})
	n.removeChildByPtr(child)
	child.Parent = nil
	setSubtreeStore(child, nil)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("grove: child index out of range")
	}
	child := n.children[index]
	emit(n, HierarchyEvent{Type: EventNodeRemoved, Node: child, Parent: n})
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	setSubtreeStore(child, nil)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		emit(n, HierarchyEvent{Type: EventNodeRemoved, Node: child, Parent: n})
		child.Parent = nil
		setSubtreeStore(child, nil)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Sibling order
// is traversal order, so this reorders collection results.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("grove: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("grove: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// SetActive sets the node's active flag and notifies the attached
// HierarchyStore, if any. Writing the Active field directly skips the
// notification.
func (n *Node) SetActive(active bool) {
	if n.Active == active {
		return
	}
	n.Active = active
	if active {
		emit(n, HierarchyEvent{Type: EventNodeActivated, Node: n})
	} else {
		emit(n, HierarchyEvent{Type: EventNodeDeactivated, Node: n})
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants and their components.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, c := range n.components {
		c.setOwner(nil)
	}
	n.components = nil
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.store = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// setSubtreeStore sets the hierarchy store on node and all its descendants.
func setSubtreeStore(node *Node, store HierarchyStore) {
	node.store = store
	for _, child := range node.children {
		setSubtreeStore(child, store)
	}
}
