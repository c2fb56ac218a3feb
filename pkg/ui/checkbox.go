package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16, // Default size
	}
}

// Contains reports whether the pixel (x, y) is over the box or its label
func (c *Checkbox) Contains(x, y int) bool {
	w := c.Size + 8 + float64(len(c.Label)*6)
	return float64(x) >= c.X && float64(x) <= c.X+w &&
		float64(y) >= c.Y && float64(y) <= c.Y+c.Size
}

// Update toggles the value on a click and reports whether it changed
func (c *Checkbox) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !c.Contains(mx, my) {
		return false
	}
	c.Value = !c.Value
	return true
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	// Draw box border
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	// Fill if checked
	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}

	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}
