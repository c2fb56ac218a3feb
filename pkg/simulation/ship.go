package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

// Ship is one flocking agent.
// It carries two motion representations that are never reconciled:
// Inc drives the straight line advance and the boundary bounce,
// Delta is pushed around by ripples and flocking and gives the heading.
type Ship struct {
	Pos   geometry.Vector2D
	Delta geometry.Vector2D
	Color Color
	Speed float64
	Inc   geometry.Vector2D
}

// NewShip creates a ship at a random place inside the viewport.
func NewShip(rng *rand.Rand, cfg *Config, vp Viewport) *Ship {
	s := &Ship{
		Pos: geometry.Vector2D{
			X: vp.Width * (rng.Float64() - 0.5),
			Y: vp.Height * (rng.Float64() - 0.5),
		},
		Delta: geometry.Vector2D{
			X: uniform(rng, cfg.MinShipDelta, cfg.MaxShipDelta),
			Y: uniform(rng, cfg.MinShipDelta, cfg.MaxShipDelta),
		}.Resize(cfg.VectorSize),
		Color: Color(rng.IntN(NumShipColors)),
		Speed: uniform(rng, cfg.MinSpeed, cfg.MaxSpeed),
	}

	// |Inc| == Speed, with at least a quarter of it along X
	x := uniform(rng, s.Speed/4, s.Speed)
	y := math.Sqrt(math.Max(s.Speed*s.Speed-x*x, 0))
	if rng.IntN(2) == 0 {
		x = -x
	}
	if rng.IntN(2) == 0 {
		y = -y
	}
	s.Inc = geometry.Vector2D{X: x, Y: y}
	return s
}

// Advance moves the ship along its increment.
func (s *Ship) Advance() {
	s.Pos = s.Pos.Add(s.Inc)
}

// Heading is the unit vector the ship is facing, zero when Delta is zero.
func (s *Ship) Heading() geometry.Vector2D {
	return s.Delta.Normalize()
}

func (s *Ship) ToProto() *pb.ShipState {
	h := s.Heading()
	return &pb.ShipState{
		Position: &pb.Vector2D{X: s.Pos.X, Y: s.Pos.Y},
		Heading:  &pb.Vector2D{X: h.X, Y: h.Y},
		Color:    s.Color.ToProto(),
	}
}

// shipOutline returns the notched delta drawn for a ship centered at pos and heading at angle:
// the tip, the tip turned by 120 degrees, the center, the tip turned by 240 degrees.
func shipOutline(pos geometry.Vector2D, angle, radius float64) [4]geometry.Vector2D {
	const third = 2 * math.Pi / 3
	return [4]geometry.Vector2D{
		pos.Add(geometry.NewVectorPolar(radius, angle)),
		pos.Add(geometry.NewVectorPolar(radius, angle+third)),
		pos,
		pos.Add(geometry.NewVectorPolar(radius, angle+2*third)),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
