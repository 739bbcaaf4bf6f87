package grove

import "testing"

// setupBenchTree builds a tree of n nodes in rows of 100, each carrying a
// health component, with every tenth node also carrying a spike.
func setupBenchTree(n int) *Node {
	root := NewNode("root")
	var row *Node
	for i := 0; i < n; i++ {
		if i%100 == 0 {
			row = NewNode("row")
			root.AddChild(row)
		}
		leaf := NewNode("leaf")
		leaf.AddComponent(&health{HP: i})
		if i%10 == 0 {
			leaf.AddComponent(&spike{Dmg: 1})
		}
		row.AddChild(leaf)
	}
	return root
}

func BenchmarkCollect_10000Nodes(b *testing.B) {
	root := setupBenchTree(10000)
	out := make([]*health, 0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out = out[:0]
		CollectAll(root, &out, DepthUnbounded)
	}
}

func BenchmarkCollect_10000Nodes_Pooled(b *testing.B) {
	root := setupBenchTree(10000)

	// Warm up: first acquire allocates the buffer the rest reuse.
	buf := ComponentsInSubtree[*health](root, DepthUnbounded)
	buf.Release()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := ComponentsInSubtree[*health](root, DepthUnbounded)
		buf.Release()
	}
}

func BenchmarkCollectActive_10000Nodes(b *testing.B) {
	root := setupBenchTree(10000)
	// Deactivate every other row to exercise subtree pruning.
	for i, row := range root.Children() {
		if i%2 == 1 {
			row.Active = false
		}
	}
	out := make([]*health, 0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out = out[:0]
		CollectActive(root, &out, DepthUnbounded)
	}
}

func BenchmarkCollectInterface_10000Nodes(b *testing.B) {
	root := setupBenchTree(10000)
	out := make([]hazard, 0, 1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out = out[:0]
		CollectAll(root, &out, DepthUnbounded)
	}
}

func BenchmarkEstimateBounds_10000Nodes(b *testing.B) {
	root := setupBenchTree(10000)
	for _, row := range root.Children() {
		for _, leaf := range row.Children() {
			leaf.AddComponent(&BoxCollider{Rect: Rect{0, 0, 8, 8}})
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EstimateBounds(root)
	}
}
