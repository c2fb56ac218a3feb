package simulation

import "github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"

// Viewport maps the window pixels onto world space.
// The shorter window side always spans 2 world units, centered on the origin, Y up.
type Viewport struct {
	PixelWidth  int
	PixelHeight int
	Width       float64
	Height      float64
}

func NewViewport(pixelWidth, pixelHeight int) Viewport {
	v := Viewport{Width: 2, Height: 2}
	v.Resize(pixelWidth, pixelHeight)
	return v
}

// Resize recomputes the world extents for a new window size.
// A zero or negative dimension is ignored and the previous extents are kept.
func (v *Viewport) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	v.PixelWidth, v.PixelHeight = w, h
	if w <= h {
		v.Width = 2
		v.Height = 2 * float64(h) / float64(w)
	} else {
		v.Width = 2 * float64(w) / float64(h)
		v.Height = 2
	}
	return true
}

// ToWorld converts a cursor position in pixels into world coordinates.
func (v Viewport) ToWorld(px, py float64) geometry.Vector2D {
	if v.PixelWidth <= 0 || v.PixelHeight <= 0 {
		return geometry.Vector2D{}
	}
	return geometry.Vector2D{
		X: v.Width*px/float64(v.PixelWidth) - 0.5*v.Width,
		Y: 0.5*v.Height - v.Height*py/float64(v.PixelHeight),
	}
}

// ToScreen converts world coordinates into pixels.
func (v Viewport) ToScreen(p geometry.Vector2D) (float64, float64) {
	return (p.X + 0.5*v.Width) * float64(v.PixelWidth) / v.Width,
		(0.5*v.Height - p.Y) * float64(v.PixelHeight) / v.Height
}

// Scale is the number of pixels per world unit.
func (v Viewport) Scale() float64 {
	return float64(v.PixelWidth) / v.Width
}
