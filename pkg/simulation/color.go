package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
)

// Color is the category shared by ships and ripples.
// The order matches the beep frequency table: White is 0, None is 7.
type Color uint8

const (
	ColorWhite Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	// ColorNone is only carried by ripples: an invisible ripple that couples with every ship.
	ColorNone
)

// NumColors counts every category, ColorNone included.
const NumColors = int(ColorNone) + 1

// NumShipColors is the number of colors a ship can be born with.
const NumShipColors = int(ColorNone)

var colorNames = [NumColors]string{"white", "red", "yellow", "green", "cyan", "blue", "magenta", "none"}

// palette holds the drawing color of each visible category, None has no entry worth drawing.
var palette = [NumShipColors][3]float32{
	{1.0, 1.0, 1.0},
	{1.0, 0.3, 0.3},
	{1.0, 1.0, 0.3},
	{0.3, 1.0, 0.3},
	{0.3, 1.0, 1.0},
	{0.3, 0.3, 1.0},
	{1.0, 0.3, 1.0},
}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return "unknown"
}

// IsVisible reports whether ripples of this color are drawn.
func (c Color) IsVisible() bool {
	return c < ColorNone
}

// RGB returns the normalized red, green and blue components, black for None.
func (c Color) RGB() (r, g, b float32) {
	if !c.IsVisible() {
		return 0, 0, 0
	}
	p := palette[c]
	return p[0], p[1], p[2]
}

// RGBA returns the color faded by intensity in [0, 1].
func (c Color) RGBA(intensity float64) color.RGBA {
	r, g, b := c.RGB()
	k := float32(clamp01(intensity)) * 255
	return color.RGBA{R: uint8(r * k), G: uint8(g * k), B: uint8(b * k), A: 255}
}

// ColorFromProto converts the wire color, unknown values fall back to None.
func ColorFromProto(c pb.Color) Color {
	if c < 0 || int(c) >= NumColors {
		return ColorNone
	}
	return Color(c)
}

// ToProto converts the color into its wire representation.
func (c Color) ToProto() pb.Color {
	return pb.Color(c)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
