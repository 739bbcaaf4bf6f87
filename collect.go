package grove

// DepthUnbounded disables the depth limit on subtree collection.
const DepthUnbounded = -1

// CollectAll appends to out every component satisfying T on root and its
// descendants, in pre-order (a node's own components before its children's,
// children in sibling order). maxDepth limits how far below root the walk
// descends: 0 visits root only, 1 adds direct children, DepthUnbounded
// removes the limit. Nodes at exactly maxDepth are collected but not
// descended into. Active flags are ignored; use CollectActive to prune
// inactive subtrees. Panics if root is nil.
func CollectAll[T any](root *Node, out *[]T, maxDepth int) {
	if root == nil {
		panic("grove: collect on nil root")
	}
	collect(root, out, 0, maxDepth, false)
}

// CollectActive is CollectAll restricted to active nodes: an inactive node
// and its entire subtree are skipped, even if a descendant's own flag is
// set. Panics if root is nil.
func CollectActive[T any](root *Node, out *[]T, maxDepth int) {
	if root == nil {
		panic("grove: collect on nil root")
	}
	collect(root, out, 0, maxDepth, true)
}

func collect[T any](n *Node, out *[]T, depth, maxDepth int, activeOnly bool) {
	if activeOnly && !n.Active {
		return
	}
	for _, c := range n.components {
		if m, ok := c.(T); ok {
			*out = append(*out, m)
		}
	}
	if maxDepth >= 0 && depth >= maxDepth {
		return
	}
	for _, child := range n.children {
		collect(child, out, depth+1, maxDepth, activeOnly)
	}
}

// ComponentsInSubtree collects like CollectAll into a pooled buffer from the
// process-wide pool for T. The caller must release the buffer exactly once
// when done with its items:
//
//	buf := grove.ComponentsInSubtree[*Sprite](root, grove.DepthUnbounded)
//	defer buf.Release()
//	for _, s := range buf.Items { ... }
func ComponentsInSubtree[T any](root *Node, maxDepth int) *Buffer[T] {
	if root == nil {
		// Check before acquiring so the panic path holds no checkout.
		panic("grove: collect on nil root")
	}
	buf := SharedPool[T]().Acquire()
	CollectAll(root, &buf.Items, maxDepth)
	return buf
}

// ActiveComponentsInSubtree is ComponentsInSubtree restricted to active
// nodes, with the same release contract.
func ActiveComponentsInSubtree[T any](root *Node, maxDepth int) *Buffer[T] {
	if root == nil {
		panic("grove: collect on nil root")
	}
	buf := SharedPool[T]().Acquire()
	CollectActive(root, &buf.Items, maxDepth)
	return buf
}

// FindInChildren returns the first component satisfying T on n or one of
// n's direct children, short-circuiting in attachment then sibling order.
// When includeInactive is false, inactive nodes are skipped; if n itself is
// inactive the search yields nothing. Panics if n is nil.
func FindInChildren[T any](n *Node, includeInactive bool) (T, bool) {
	var zero T
	if n == nil {
		panic("grove: find on nil node")
	}
	if !includeInactive && !n.Active {
		return zero, false
	}
	if m, ok := ComponentOf[T](n); ok {
		return m, true
	}
	for _, child := range n.children {
		if !includeInactive && !child.Active {
			continue
		}
		if m, ok := ComponentOf[T](child); ok {
			return m, true
		}
	}
	return zero, false
}

// FindSibling returns the first component satisfying T attached to the same
// node as self, excluding self itself. Exclusion is by identity, so a second
// component of self's exact concrete type is still a valid match. When
// includeInactive is false, an inactive owner node yields nothing, matching
// the other active-only lookups. Returns false if self is detached or no
// other match exists.
func FindSibling[T any](self Component, includeInactive bool) (T, bool) {
	var zero T
	if self == nil {
		panic("grove: FindSibling on nil component")
	}
	owner := self.Owner()
	if owner == nil {
		return zero, false
	}
	if !includeInactive && !owner.Active {
		return zero, false
	}
	for _, c := range owner.components {
		if c == self {
			continue
		}
		if m, ok := c.(T); ok {
			return m, true
		}
	}
	return zero, false
}
