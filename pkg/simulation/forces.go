package simulation

import "github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"

// visitRipples calls fn with the index and the ripple for every ripple that may contain s,
// in insertion order. Without the spatial index every ripple is visited.
// With it only the ripples around the ship's cell are, until fn moves the ship to
// another cell: the remaining ripples are then all visited, as a full scan would.
func (w *World) visitRipples(s *Ship, fn func(j int, r *Ripple)) {
	if w.grid == nil {
		for j, r := range w.ripples.All() {
			fn(j, r)
		}
		return
	}

	key, ok := w.grid.cellOf(s.Pos)
	if !ok {
		for j, r := range w.ripples.All() {
			fn(j, r)
		}
		return
	}
	for _, j := range w.grid.nearby(key) {
		fn(j, w.ripples.At(j))
		if moved, ok := w.grid.cellOf(s.Pos); !ok || moved != key {
			for k := j + 1; k < w.ripples.Len(); k++ {
				fn(k, w.ripples.At(k))
			}
			return
		}
	}
}

// applyDisplacement pushes every ship away from the center of each coupled ripple.
// Young ripples push hardest.
func (w *World) applyDisplacement() {
	k := w.cfg.DisplacementFactor
	for _, s := range w.ships.All() {
		w.visitRipples(s, func(_ int, r *Ripple) {
			if !r.Couples(s) {
				return
			}
			intensity := k * r.Dissipation(w.cfg.InitialRadius, w.cfg.FinalRadius)
			d := s.Pos.Sub(r.Pos).Mul(intensity)
			s.Delta = s.Delta.Add(d)
			s.Pos = s.Pos.Add(d)
		})
		s.Delta = s.Delta.Resize(w.cfg.VectorSize)
	}
}

// flock runs one accumulating pass shared by cohesion and alignment.
// The running sum and the pair tally live for the whole pass, not per ship:
// for ship i and ripple j the tally is i*R + j, whether the ripple contained the ship or not.
// When the tally is still zero the position is left alone.
func (w *World) flock(multiplier int, sample func(s *Ship) geometry.Vector2D) {
	var sum geometry.Vector2D
	n := w.ripples.Len()
	for i, s := range w.ships.All() {
		base := i * n
		w.visitRipples(s, func(j int, r *Ripple) {
			if !r.Contains(s.Pos) {
				return
			}
			sum = sum.Add(sample(s))
			avg, err := sum.Div(float64(base + j))
			if err != nil {
				return
			}
			s.Pos = avg.Mul(float64(multiplier))
		})
		s.Delta = s.Delta.Resize(w.cfg.VectorSize)
	}
}

func (w *World) applyCohesion() {
	w.flock(w.multipliers.Cohesion, func(s *Ship) geometry.Vector2D { return s.Pos })
}

func (w *World) applyAlignment() {
	w.flock(w.multipliers.Alignment, func(s *Ship) geometry.Vector2D { return s.Delta })
}

// applySeparation scales the position of every ship by the separation multiplier,
// once per ripple containing it.
func (w *World) applySeparation() {
	m := float64(w.multipliers.Separation)
	for _, s := range w.ships.All() {
		w.visitRipples(s, func(_ int, r *Ripple) {
			if r.Contains(s.Pos) {
				s.Pos = s.Pos.Mul(m)
			}
		})
		s.Delta = s.Delta.Resize(w.cfg.VectorSize)
	}
}
