package grove

import (
	"math"
	"testing"
)

func assertRect(t *testing.T, got, want Rect) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps ||
		math.Abs(got.Width-want.Width) > eps || math.Abs(got.Height-want.Height) > eps {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}

func TestEstimateBoundsEmptyTree(t *testing.T) {
	n := NewNode("n")
	n.AddChild(NewNode("child"))
	assertRect(t, EstimateBounds(n), Rect{})
}

func TestEstimateBoundsZeroExtentLeavesZero(t *testing.T) {
	n := NewNode("n")
	n.X, n.Y = 50, 50
	n.AddComponent(&BoundsOverride{}) // zero extent
	assertRect(t, EstimateBounds(n), Rect{})
}

func TestEstimateBoundsFirstContributionSeeds(t *testing.T) {
	n := NewNode("n")
	n.AddComponent(&BoundsOverride{Rect: Rect{100, 100, 20, 20}})

	// The result must equal the contribution exactly, not its union with
	// an origin-centered zero rect.
	assertRect(t, EstimateBounds(n), Rect{100, 100, 20, 20})
}

func TestEstimateBoundsZeroExtentDoesNotCorruptSeed(t *testing.T) {
	n := NewNode("n")
	n.AddComponent(&BoundsOverride{}) // zero, skipped
	n.AddComponent(&BoundsOverride{Rect: Rect{40, 40, 10, 10}})
	n.AddComponent(&BoundsOverride{}) // zero, skipped too
	assertRect(t, EstimateBounds(n), Rect{40, 40, 10, 10})
}

func TestEstimateBoundsUnionAcrossSubtree(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	root.AddChild(a)
	root.AddChild(b)
	a.AddComponent(&BoxCollider{Rect: Rect{0, 0, 10, 10}})
	b.X, b.Y = 90, 90
	b.AddComponent(&BoxCollider{Rect: Rect{0, 0, 10, 10}})

	assertRect(t, EstimateBounds(root), Rect{0, 0, 100, 100})
}

func TestEstimateBoundsAppliesTransform(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)
	root.X, root.Y = 100, 0
	child.ScaleX, child.ScaleY = 2, 3
	child.AddComponent(&BoxCollider{Rect: Rect{0, 0, 10, 10}})

	assertRect(t, EstimateBounds(root), Rect{100, 0, 20, 30})
}

func TestEstimateBoundsPointLightSquare(t *testing.T) {
	n := NewNode("n")
	n.X, n.Y = 50, 60
	n.AddComponent(NewPointLight(25))

	// Influence is modeled as the square of side 2*Range around the world
	// position.
	assertRect(t, EstimateBounds(n), Rect{25, 35, 50, 50})
}

func TestEstimateBoundsZeroRangeLightSkipped(t *testing.T) {
	n := NewNode("n")
	n.AddComponent(&PointLight{})
	assertRect(t, EstimateBounds(n), Rect{})
}

func TestEstimateBoundsSpriteExtent(t *testing.T) {
	n := NewNode("n")
	s := NewSprite(nil) // WhitePixel, 1x1
	s.Region = Rect{0, 0, 16, 8}
	n.AddComponent(s)

	assertRect(t, EstimateBounds(n), Rect{0, 0, 16, 8})
}

func TestEstimateBoundsIncludesInactive(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)
	child.Active = false
	child.AddComponent(&BoxCollider{Rect: Rect{5, 5, 10, 10}})

	// Bounds estimation walks the whole subtree regardless of active flags.
	assertRect(t, EstimateBounds(root), Rect{5, 5, 10, 10})
}

func TestEstimateBoundsRotationAABB(t *testing.T) {
	n := NewNode("n")
	n.Rotation = math.Pi / 2
	n.AddComponent(&BoxCollider{Rect: Rect{0, 0, 10, 4}})

	// A quarter turn maps (w, h) onto (-h, w): x in [-4, 0], y in [0, 10].
	assertRect(t, EstimateBounds(n), Rect{-4, 0, 4, 10})
}

func TestEstimateBoundsNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EstimateBounds(nil) should panic")
		}
	}()
	EstimateBounds(nil)
}
