package grove

// HierarchyStore is the interface for optional ECS integration.
// When attached to a Tree, hierarchy changes are forwarded to the ECS.
type HierarchyStore interface {
	EmitEvent(event HierarchyEvent)
}

// EventType identifies a kind of hierarchy change.
type EventType uint8

const (
	EventNodeAdded         EventType = iota // a node was attached to a parent
	EventNodeRemoved                        // a node was detached from its parent
	EventNodeActivated                      // SetActive(true) on a previously inactive node
	EventNodeDeactivated                    // SetActive(false) on a previously active node
	EventComponentAttached                  // a component was added to a node
	EventComponentDetached                  // a component was removed from a node
)

// HierarchyEvent carries hierarchy change data for the ECS bridge.
type HierarchyEvent struct {
	Type EventType
	Node *Node
	// Parent is the parent involved in add/remove events.
	Parent *Node
	// Component is set for attach/detach events.
	Component Component
}

// emit forwards ev to the hierarchy store reachable from n, if any.
func emit(n *Node, ev HierarchyEvent) {
	if n.store != nil {
		n.store.EmitEvent(ev)
	}
}

// Tree owns a root container node, the debug flag, and the optional
// hierarchy store. Nodes added beneath the root inherit the store, so
// subsequent changes anywhere in the tree reach the ECS bridge.
type Tree struct {
	root  *Node
	store HierarchyStore
	debug bool
}

// NewTree creates a tree with a pre-created root node named "root".
func NewTree() *Tree {
	return &Tree{root: NewNode("root")}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// SetHierarchyStore attaches an optional ECS bridge. Pass nil to detach.
// The store is propagated to every node currently in the tree and inherited
// by nodes added later.
func (t *Tree) SetHierarchyStore(store HierarchyStore) {
	t.store = store
	setSubtreeStore(t.root, store)
}

// SetDebugMode enables or disables debug checks and stderr warnings for
// operations on this tree's nodes.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Tree debug flag so that node
// methods, which have no tree reference, can consult it. With the expected
// single tree per process this behaves like a per-tree flag.
var globalDebug bool
