package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

func TestViewport_Resize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH float64
	}{
		{"square", 800, 800, 2, 2},
		{"portrait", 400, 800, 2, 4},
		{"landscape", 1200, 600, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.w, tt.h)
			if v.Width != tt.wantW || v.Height != tt.wantH {
				t.Errorf("NewViewport(%d, %d) = %vx%v; want %vx%v", tt.w, tt.h, v.Width, v.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestViewport_ResizeIgnoresEmptyWindow(t *testing.T) {
	v := NewViewport(1200, 600)
	for _, size := range [][2]int{{0, 600}, {1200, 0}, {0, 0}, {-5, 10}} {
		if v.Resize(size[0], size[1]) {
			t.Errorf("Resize(%d, %d) reported a change", size[0], size[1])
		}
		if v.Width != 4 || v.Height != 2 || v.PixelWidth != 1200 {
			t.Errorf("Resize(%d, %d) changed the viewport to %+v", size[0], size[1], v)
		}
	}
}

func TestViewport_ToWorld(t *testing.T) {
	v := NewViewport(800, 400) // 4 x 2 world units

	tests := []struct {
		px, py float64
		want   geometry.Vector2D
	}{
		{400, 200, geometry.Vector2D{X: 0, Y: 0}},
		{0, 0, geometry.Vector2D{X: -2, Y: 1}},
		{800, 400, geometry.Vector2D{X: 2, Y: -1}},
		{600, 100, geometry.Vector2D{X: 1, Y: 0.5}},
	}
	for _, tt := range tests {
		got := v.ToWorld(tt.px, tt.py)
		if !got.Eq(tt.want) {
			t.Errorf("ToWorld(%v, %v) = %v; want %v", tt.px, tt.py, got, tt.want)
		}
		x, y := v.ToScreen(got)
		if math.Abs(x-tt.px) > 1e-9 || math.Abs(y-tt.py) > 1e-9 {
			t.Errorf("ToScreen(%v) = (%v, %v); want (%v, %v)", got, x, y, tt.px, tt.py)
		}
	}
	if v.Scale() != 200 {
		t.Errorf("Scale = %v; want 200", v.Scale())
	}
}
