package grove

import "strings"

// Path returns the slash-joined chain of node names from the tree root down
// to n, with a leading slash: a root A with child B with child C gives
// Path(C) == "/A/B/C". Intended for diagnostics and log messages, not for
// addressing nodes. Panics if n is nil.
func Path(n *Node) string {
	return PathTo(n, nil)
}

// PathTo returns the path from ancestor (exclusive) down to n, without a
// leading slash: PathTo(C, A) == "B/C", and PathTo(n, n) == "". A nil
// ancestor means the tree root, which produces the same leading-slash form
// as Path. If ancestor is not actually an ancestor of n, the walk runs off
// the root and the full rooted path is returned instead. Panics if n is nil.
func PathTo(n, ancestor *Node) string {
	if n == nil {
		panic("grove: path of nil node")
	}
	if n == ancestor {
		return ""
	}
	var names []string
	cur := n
	for cur != nil && cur != ancestor {
		names = append(names, cur.Name)
		cur = cur.Parent
	}

	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	path := b.String()
	if cur == ancestor && ancestor != nil {
		// Relative paths have no leading slash.
		return path[1:]
	}
	return path
}
