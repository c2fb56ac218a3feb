package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable color swatch with a one letter label
type Button struct {
	Label    string
	X, Y     float64
	Width    float64
	Height   float64
	Selected bool
	OnClick  func() // Callback function

	// Styling
	Swatch      color.RGBA
	BorderColor color.RGBA
	HoverColor  color.RGBA
}

// NewButton creates a new swatch button
func NewButton(x, y, width, height float64, label string, swatch color.RGBA, onClick func()) *Button {
	return &Button{
		Label:       label,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		OnClick:     onClick,
		Swatch:      swatch,
		BorderColor: color.RGBA{R: 120, G: 120, B: 120, A: 255},
		HoverColor:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Contains reports whether the pixel (x, y) is over the button
func (b *Button) Contains(x, y int) bool {
	return float64(x) >= b.X && float64(x) <= b.X+b.Width &&
		float64(y) >= b.Y && float64(y) <= b.Y+b.Height
}

// Update fires OnClick once per press inside the button and reports whether it did
func (b *Button) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !b.Contains(mx, my) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		b.Swatch, true)

	border := b.BorderColor
	width := float32(1)
	switch {
	case b.Selected:
		border = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		width = 3
	case b.Contains(mx, my):
		border = b.HoverColor
		width = 2
	}
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		width, border, true)

	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X)+int(b.Width)/2-3, int(b.Y+b.Height)+2)
}
