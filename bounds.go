package grove

import "math"

// EstimateBounds returns the world-space axis-aligned rect covering every
// geometry-bearing component on n and its descendants: BoundsProvider
// extents (Sprite, BoxCollider, BoundsOverride, and any user component
// implementing it) transformed through the node's world matrix, plus
// PointLight influence squares. Active flags are ignored; the walk covers
// the whole subtree.
//
// Empty (zero-extent) contributions are skipped, and the first non-empty
// contribution seeds the result directly, so the returned rect is never
// stretched toward an uninitialized zero rect at the origin. A subtree with
// no geometry yields the zero Rect. Panics if n is nil.
func EstimateBounds(n *Node) Rect {
	if n == nil {
		panic("grove: EstimateBounds on nil node")
	}
	var acc Rect
	seeded := false
	accumulateBounds(n, &acc, &seeded)
	return acc
}

func accumulateBounds(n *Node, acc *Rect, seeded *bool) {
	for _, c := range n.components {
		r, ok := componentBounds(n, c)
		if !ok || r.IsEmpty() {
			continue
		}
		if !*seeded {
			*acc = r
			*seeded = true
		} else {
			*acc = acc.Union(r)
		}
	}
	for _, child := range n.children {
		accumulateBounds(child, acc, seeded)
	}
}

// componentBounds returns the world-space rect contributed by c, or false
// if c carries no geometry.
func componentBounds(n *Node, c Component) (Rect, bool) {
	if light, ok := c.(*PointLight); ok {
		if light.Range <= 0 {
			return Rect{}, false
		}
		x, y := n.WorldPosition()
		return Rect{
			X:      x - light.Range,
			Y:      y - light.Range,
			Width:  light.Range * 2,
			Height: light.Range * 2,
		}, true
	}
	if bp, ok := c.(BoundsProvider); ok {
		local := bp.LocalBounds()
		if local.IsEmpty() {
			return Rect{}, false
		}
		return worldAABB(n, local), true
	}
	return Rect{}, false
}

// worldAABB transforms a local-space rect through the node's world matrix
// and returns the axis-aligned box covering the transformed corners.
func worldAABB(n *Node, local Rect) Rect {
	m := n.WorldTransform()
	x0, y0 := transformPoint(m, local.X, local.Y)
	x1, y1 := transformPoint(m, local.X+local.Width, local.Y)
	x2, y2 := transformPoint(m, local.X, local.Y+local.Height)
	x3, y3 := transformPoint(m, local.X+local.Width, local.Y+local.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
