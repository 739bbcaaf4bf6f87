package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BoundsProvider is implemented by components that contribute a local-space
// extent to EstimateBounds. Implementations return a Rect in the owning
// node's local coordinate space; empty rects contribute nothing.
type BoundsProvider interface {
	LocalBounds() Rect
}

// --- Sprite ---

// Sprite attaches a drawable image to a node. Grove does not render it;
// the component exists so queries and bounds estimation have a visual
// extent to work with.
type Sprite struct {
	BaseComponent

	// Image is the source image. Nil falls back to WhitePixel.
	Image *ebiten.Image
	// Region selects a sub-rect of Image. A zero Region means the full image.
	Region Rect
	// Color is the tint. Zero value or white means neutral.
	Color Color
}

// NewSprite creates a sprite component for the given image.
// Pass nil to use the shared WhitePixel image.
func NewSprite(img *ebiten.Image) *Sprite {
	if img == nil {
		img = WhitePixel
	}
	return &Sprite{Image: img, Color: ColorWhite}
}

// LocalBounds returns the sprite's extent at the node origin: the region
// size if set, otherwise the full image size.
func (s *Sprite) LocalBounds() Rect {
	if !s.Region.IsEmpty() {
		return Rect{Width: s.Region.Width, Height: s.Region.Height}
	}
	if s.Image != nil {
		b := s.Image.Bounds()
		return Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
	return Rect{}
}

// --- BoxCollider ---

// BoxCollider attaches a rectangular collision volume in local space.
type BoxCollider struct {
	BaseComponent

	Rect Rect
}

// NewBoxCollider creates a collider covering the given local-space rect.
func NewBoxCollider(r Rect) *BoxCollider {
	return &BoxCollider{Rect: r}
}

// LocalBounds returns the collider rect.
func (c *BoxCollider) LocalBounds() Rect {
	return c.Rect
}

// --- BoundsOverride ---

// BoundsOverride declares an explicit local-space bound for a node whose
// real extent grove cannot see (procedural geometry, external renderers).
type BoundsOverride struct {
	BaseComponent

	Rect Rect
}

// LocalBounds returns the declared rect.
func (o *BoundsOverride) LocalBounds() Rect {
	return o.Rect
}

// --- PointLight ---

// PointLight attaches a point light source to a node. Its influence area is
// the axis-aligned square of side 2*Range centered on the node's world
// position; bounds estimation uses that square, not a circle, since the
// result is an axis-aligned rect anyway.
type PointLight struct {
	BaseComponent

	// Range is the light's influence radius in world units.
	Range float64
	// Intensity controls light brightness in the range [0, 1].
	Intensity float64
	// Color is the tint color. Zero value or white means neutral.
	Color Color
}

// NewPointLight creates a point light with the given range at full intensity.
func NewPointLight(rng float64) *PointLight {
	return &PointLight{Range: rng, Intensity: 1, Color: ColorWhite}
}
