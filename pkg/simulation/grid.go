package simulation

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

type gridKey struct {
	x, y int
}

// cells outside this range (or NaN positions) are not indexed, the caller scans everything
const maxGridCoord = 1 << 30

// rippleGrid buckets ripple indices by the cell of their center.
// With a cell size of at least FinalRadius a ship can only be inside
// ripples whose center is in the 3x3 block around its own cell.
type rippleGrid struct {
	cellSize float64
	cells    map[gridKey][]int
	scratch  []int
}

func newRippleGrid(cellSize float64) *rippleGrid {
	return &rippleGrid{
		cellSize: cellSize,
		cells:    make(map[gridKey][]int),
	}
}

func (g *rippleGrid) cellOf(p geometry.Vector2D) (gridKey, bool) {
	fx := math.Floor(p.X / g.cellSize)
	fy := math.Floor(p.Y / g.cellSize)
	if !(math.Abs(fx) < maxGridCoord && math.Abs(fy) < maxGridCoord) {
		return gridKey{}, false
	}
	return gridKey{x: int(fx), y: int(fy)}, true
}

func (g *rippleGrid) rebuild(ripples *Store[*Ripple]) {
	// keep the slices capacity between ticks
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i, r := range ripples.All() {
		key, ok := g.cellOf(r.Pos)
		if !ok {
			continue
		}
		g.cells[key] = append(g.cells[key], i)
	}
}

// nearby returns, in ascending order, the indices of the ripples centered in the 3x3 block around key.
// The returned slice is reused by the next call.
func (g *rippleGrid) nearby(key gridKey) []int {
	g.scratch = g.scratch[:0]
	for i := key.x - 1; i <= key.x+1; i++ {
		for j := key.y - 1; j <= key.y+1; j++ {
			g.scratch = append(g.scratch, g.cells[gridKey{x: i, y: j}]...)
		}
	}
	slices.Sort(g.scratch)
	return g.scratch
}
