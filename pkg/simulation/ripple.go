package simulation

import (
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

// Ripple is an expanding circle spawned by a click. Its center never moves.
type Ripple struct {
	Pos    geometry.Vector2D
	Radius float64
	Color  Color
}

// Grow widens the ripple by inc and reports whether it is still alive.
func (r *Ripple) Grow(inc, finalRadius float64) bool {
	r.Radius += inc
	return r.Radius < finalRadius
}

// Contains reports whether p lies strictly inside the ripple.
func (r *Ripple) Contains(p geometry.Vector2D) bool {
	return p.DistanceSquaredTo(r.Pos) < r.Radius*r.Radius
}

// Couples reports whether the ripple pushes the ship: colors must match,
// unless the ripple is ColorNone, and the ship must be inside.
func (r *Ripple) Couples(s *Ship) bool {
	if r.Color != ColorNone && r.Color != s.Color {
		return false
	}
	return r.Contains(s.Pos)
}

// Dissipation goes linearly from 1 at the initial radius down to 0 at the final one.
func (r *Ripple) Dissipation(initialRadius, finalRadius float64) float64 {
	return (finalRadius - r.Radius) / (finalRadius - initialRadius)
}

func (r *Ripple) ToProto() *pb.RippleState {
	return &pb.RippleState{
		Position: &pb.Vector2D{X: r.Pos.X, Y: r.Pos.Y},
		Radius:   r.Radius,
		Color:    r.Color.ToProto(),
	}
}
