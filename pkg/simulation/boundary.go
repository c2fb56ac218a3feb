package simulation

// applyBoundary bounces ships off the viewport edges.
// The test is made on the position scaled by ShipRadius, the clamp on the position itself.
func (w *World) applyBoundary() {
	halfW := w.viewport.Width / 2
	halfH := w.viewport.Height / 2
	sr := w.cfg.ShipRadius
	for _, s := range w.ships.All() {
		bounce(s, halfW, halfH, sr)
	}
}

func bounce(s *Ship, halfW, halfH, shipRadius float64) {
	scaled := s.Pos.Mul(shipRadius)

	if scaled.X > halfW {
		s.Inc.X = -s.Inc.X
		s.Pos.X = halfW - shipRadius
	} else if scaled.X < -halfW {
		s.Inc.X = -s.Inc.X
		s.Pos.X = -halfW + shipRadius
	}

	if scaled.Y > halfH {
		s.Inc.Y = -s.Inc.Y
		s.Pos.Y = halfH - shipRadius
	} else if scaled.Y < -halfH {
		s.Inc.Y = -s.Inc.Y
		s.Pos.Y = -halfH + shipRadius
	}
}
