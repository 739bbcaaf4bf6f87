package grove

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AlignPosition moves n so that its world position equals (x, y), converting
// through the parent chain's inverse transform. With no parent this is just
// a local position set.
func (n *Node) AlignPosition(x, y float64) {
	if n.Parent != nil {
		inv := invertAffine(n.Parent.WorldTransform())
		x, y = transformPoint(inv, x, y)
	}
	n.X = x
	n.Y = y
}

// AlignTo moves n so that its world position coincides with target's.
// Only position is aligned; rotation and scale are left untouched.
// Panics if target is nil.
func (n *Node) AlignTo(target *Node) {
	if target == nil {
		panic("grove: AlignTo nil target")
	}
	x, y := target.WorldPosition()
	n.AlignPosition(x, y)
}

// AlignAnim tweens a node's position toward a world-space target over time.
// The target position is sampled once at creation; drive the animation by
// calling Update with the elapsed seconds each frame.
type AlignAnim struct {
	node   *Node
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// NewAlignAnim creates an animation moving n to target's current world
// position over duration seconds. easeFn is any gween easing function
// (e.g. ease.OutQuad); nil means linear.
func NewAlignAnim(n, target *Node, duration float32, easeFn ease.TweenFunc) *AlignAnim {
	if target == nil {
		panic("grove: align animation needs a target")
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	tx, ty := target.WorldPosition()
	if n.Parent != nil {
		inv := invertAffine(n.Parent.WorldTransform())
		tx, ty = transformPoint(inv, tx, ty)
	}
	return &AlignAnim{
		node:   n,
		tweenX: gween.New(float32(n.X), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(n.Y), float32(ty), duration, easeFn),
	}
}

// Update advances the animation by dt seconds, applying the interpolated
// position to the node. Returns true once both axes have finished.
func (a *AlignAnim) Update(dt float32) bool {
	if a.node.IsDisposed() {
		return true
	}
	if !a.doneX {
		v, done := a.tweenX.Update(dt)
		a.node.X = float64(v)
		a.doneX = done
	}
	if !a.doneY {
		v, done := a.tweenY.Update(dt)
		a.node.Y = float64(v)
		a.doneY = done
	}
	return a.doneX && a.doneY
}
