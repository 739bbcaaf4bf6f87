// Package grove provides hierarchy queries and component utilities for
// retained-mode scene graphs built on [Ebitengine].
//
// Grove is the query layer a scene graph grows once games need to ask
// questions of it: typed component lookup, bounded pre-order subtree
// collection with pooled result buffers, first-match searches, slash-joined
// diagnostic paths, world-space bounds estimation, and transform alignment
// (instant, or tweened via [gween]).
//
// # Nodes and components
//
// Every element is a [Node]: a named vertex that owns its children and its
// attached components. Components are plain structs embedding
// [BaseComponent]:
//
//	type Health struct {
//		grove.BaseComponent
//		HP int
//	}
//
//	n := grove.NewNode("enemy")
//	n.AddComponent(&Health{HP: 40})
//
// # Queries
//
// Lookups are generic over any component or capability interface type:
//
//	h, ok := grove.ComponentOf[*Health](n)
//
//	buf := grove.ActiveComponentsInSubtree[*Health](root, grove.DepthUnbounded)
//	defer buf.Release()
//	for _, h := range buf.Items { ... }
//
// Collection order is deterministic pre-order: a node's own components in
// attachment order, then each child subtree in sibling order. The pooled
// variants reuse per-type result buffers, so steady-state traversal does
// not allocate.
//
// # Geometry
//
// [EstimateBounds] folds the subtree's [Sprite], [BoxCollider],
// [BoundsOverride], and [PointLight] components (and any user component
// implementing [BoundsProvider]) into one world-space rect.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package grove
