package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

// testConfig is the default config with a fixed seed and no ships created at startup.
func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.ShipCount = 0
	cfg.Seed = 1
	cfg.SpatialIndex = false
	return cfg
}

func TestWorld_CoincidentShipAndRipple(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, NewViewport(800, 800))
	ship := &Ship{
		Pos:   geometry.Vector2D{},
		Delta: geometry.Vector2D{X: 0.0001, Y: -0.00005},
		Color: ColorRed,
	}
	w.addShip(ship)
	w.SetColor(ColorRed)
	w.SpawnRipple(geometry.Vector2D{})

	w.advanceRipples()
	if r := w.Ripples().At(0).Radius; math.Abs(r-0.01) > 1e-15 {
		t.Fatalf("radius after one tick = %v; want 0.01", r)
	}
	w.applyDisplacement()

	if !ship.Pos.IsZero() {
		t.Errorf("position moved to %v; want (0, 0)", ship.Pos)
	}
	if math.Abs(ship.Delta.Len()-cfg.VectorSize) > 1e-5 {
		t.Errorf("|Delta| = %v; want %v", ship.Delta.Len(), cfg.VectorSize)
	}

	// the rest of the tick keeps the ship on the ripple center
	w.applyCohesion()
	w.applyAlignment()
	w.applySeparation()
	w.applyBoundary()
	if !ship.Pos.IsZero() {
		t.Errorf("position after the whole tick = %v; want (0, 0)", ship.Pos)
	}
}

func TestWorld_DisplacementPushesAway(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, NewViewport(800, 800))
	near := &Ship{Pos: geometry.Vector2D{X: 0.1, Y: 0}, Color: ColorGreen}
	other := &Ship{Pos: geometry.Vector2D{X: 0.1, Y: 0}, Color: ColorBlue}
	w.addShip(near)
	w.addShip(other)
	w.SetColor(ColorGreen)
	r := w.SpawnRipple(geometry.Vector2D{})
	r.Radius = 0.25

	w.applyDisplacement()

	// K * (0.5 - 0.25) / 0.5 = 0.025 of the offset
	want := geometry.Vector2D{X: 0.1 + 0.1*0.025, Y: 0}
	if !near.Pos.EqWithin(want, 1e-12) {
		t.Errorf("green ship at %v; want %v", near.Pos, want)
	}
	if near.Delta.X <= 0 {
		t.Errorf("green ship heading %v should point away from the ripple", near.Delta)
	}
	if !other.Pos.Eq(geometry.Vector2D{X: 0.1, Y: 0}) {
		t.Errorf("blue ship moved to %v, the green ripple should ignore it", other.Pos)
	}
}

func TestWorld_CohesionSharesTallyAcrossShips(t *testing.T) {
	cfg := testConfig()
	cfg.Cohesion = 1
	w := NewWorld(cfg, NewViewport(800, 800))
	a := &Ship{Pos: geometry.Vector2D{X: 0.1, Y: 0}, Color: ColorRed}
	b := &Ship{Pos: geometry.Vector2D{X: 0, Y: 0.2}, Color: ColorBlue}
	w.addShip(a)
	w.addShip(b)
	for range 2 {
		w.SpawnRipple(geometry.Vector2D{}).Radius = 0.4
	}

	w.applyCohesion()

	// ship a: tally 0 skips the first hit, then sum (0.2, 0) / 1
	if want := (geometry.Vector2D{X: 0.2, Y: 0}); !a.Pos.EqWithin(want, 1e-12) {
		t.Errorf("ship a at %v; want %v", a.Pos, want)
	}
	// ship b: (0.2, 0.2) / 2 then (0.3, 0.3) / 3
	if want := (geometry.Vector2D{X: 0.1, Y: 0.1}); !b.Pos.EqWithin(want, 1e-12) {
		t.Errorf("ship b at %v; want %v", b.Pos, want)
	}
}

func TestWorld_CohesionZeroMultiplierCollapses(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, NewViewport(800, 800))
	w.addShip(&Ship{Pos: geometry.Vector2D{X: 0.3, Y: 0.3}})
	s := &Ship{Pos: geometry.Vector2D{X: 0.1, Y: -0.1}}
	w.addShip(s)
	w.SpawnRipple(geometry.Vector2D{}).Radius = 0.3

	w.applyCohesion()

	if !s.Pos.IsZero() {
		t.Errorf("with a zero multiplier the ship should collapse to the origin, got %v", s.Pos)
	}
}

func TestWorld_AlignmentUsesVelocityAverage(t *testing.T) {
	cfg := testConfig()
	cfg.Alignment = 2
	w := NewWorld(cfg, NewViewport(800, 800))
	w.addShip(&Ship{Pos: geometry.Vector2D{X: 1, Y: 1}}) // outside, only feeds the tally
	s := &Ship{Pos: geometry.Vector2D{X: 0.05, Y: 0}, Delta: geometry.Vector2D{X: 0.006, Y: 0.008}}
	w.addShip(s)
	w.SpawnRipple(geometry.Vector2D{}).Radius = 0.2

	w.applyAlignment()

	// tally 1, sum (0.006, 0.008)
	if want := (geometry.Vector2D{X: 0.012, Y: 0.016}); !s.Pos.EqWithin(want, 1e-12) {
		t.Errorf("ship at %v; want %v", s.Pos, want)
	}
}

func TestWorld_SeparationScalesPerRipple(t *testing.T) {
	cfg := testConfig()
	cfg.Separation = 2
	w := NewWorld(cfg, NewViewport(800, 800))
	s := &Ship{Pos: geometry.Vector2D{X: 0.1, Y: 0.1}, Color: ColorRed}
	w.addShip(s)
	w.SetColor(ColorBlue) // flocking ignores colors
	for range 2 {
		w.SpawnRipple(geometry.Vector2D{}).Radius = 0.4
	}

	w.applySeparation()

	if want := (geometry.Vector2D{X: 0.4, Y: 0.4}); !s.Pos.EqWithin(want, 1e-12) {
		t.Errorf("ship at %v; want %v", s.Pos, want)
	}
}

func TestWorld_PassesRenormalizeEveryShip(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, NewViewport(800, 800))
	s := &Ship{Pos: geometry.Vector2D{X: 0.9, Y: 0.9}, Delta: geometry.Vector2D{X: 3, Y: 4}}
	w.addShip(s)

	w.applySeparation()

	if math.Abs(s.Delta.Len()-cfg.VectorSize) > 1e-5 {
		t.Errorf("|Delta| = %v; want %v", s.Delta.Len(), cfg.VectorSize)
	}
}

func TestWorld_Step(t *testing.T) {
	tests := []struct {
		name      string
		configure func(cfg *Config)
		setup     func(w *World) *Ship
		wantPos   geometry.Vector2D
		wantDelta geometry.Vector2D
		wantInc   geometry.Vector2D
	}{
		{
			name:      "advance moves the ship into the ripple before displacement",
			configure: func(cfg *Config) { cfg.Separation = 1 },
			setup: func(w *World) *Ship {
				// at 0.02 the ship is outside the 0.01 ripple, at 0.005 it is inside
				s := &Ship{
					Pos:   geometry.Vector2D{X: 0.02},
					Delta: geometry.Vector2D{Y: 0.01},
					Inc:   geometry.Vector2D{X: -0.015},
					Color: ColorRed,
				}
				w.addShip(s)
				w.SpawnRipple(geometry.Vector2D{})
				return s
			},
			// intensity 0.05 * (0.5 - 0.01) / 0.5 = 0.049
			wantPos:   geometry.Vector2D{X: 0.005 * 1.049},
			wantDelta: geometry.Vector2D{X: 0.005 * 0.049, Y: 0.01}.Resize(0.01),
			wantInc:   geometry.Vector2D{X: -0.015},
		},
		{
			name: "separation scales what cohesion and alignment left",
			configure: func(cfg *Config) {
				cfg.Cohesion = 2
				cfg.Alignment = 1
				cfg.Separation = 3
			},
			setup: func(w *World) *Ship {
				s := &Ship{
					Pos:   geometry.Vector2D{X: 0.1, Y: 0.05},
					Delta: geometry.Vector2D{X: 0.01},
					Color: ColorRed,
				}
				w.addShip(s)
				w.SetColor(ColorBlue) // no displacement on a red ship
				for range 2 {
					w.SpawnRipple(geometry.Vector2D{}).Radius = 0.45
				}
				return s
			},
			// cohesion: tally 1, sum (0.2, 0.1), times 2 -> (0.4, 0.2)
			// alignment: tally 1, sum (0.02, 0), times 1 -> (0.02, 0)
			// separation: inside both ripples, times 3 twice -> (0.18, 0)
			wantPos:   geometry.Vector2D{X: 0.18},
			wantDelta: geometry.Vector2D{X: 0.01},
		},
		{
			name: "boundary bounces the advanced position",
			setup: func(w *World) *Ship {
				s := &Ship{
					Pos:   geometry.Vector2D{X: 60},
					Delta: geometry.Vector2D{X: 0.01},
					Inc:   geometry.Vector2D{X: 1, Y: 0.5},
					Color: ColorGreen,
				}
				w.addShip(s)
				return s
			},
			// 61 * 0.02 > 1: clamped to 1 - 0.02, X increment reversed
			wantPos:   geometry.Vector2D{X: 0.98, Y: 0.5},
			wantDelta: geometry.Vector2D{X: 0.01},
			wantInc:   geometry.Vector2D{X: -1, Y: 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.configure != nil {
				tt.configure(cfg)
			}
			w := NewWorld(cfg, NewViewport(800, 800))
			s := tt.setup(w)

			w.Step()

			if !s.Pos.EqWithin(tt.wantPos, 1e-12) {
				t.Errorf("Pos = %v; want %v", s.Pos, tt.wantPos)
			}
			if !s.Delta.EqWithin(tt.wantDelta, 1e-12) {
				t.Errorf("Delta = %v; want %v", s.Delta, tt.wantDelta)
			}
			if !s.Inc.EqWithin(tt.wantInc, 1e-12) {
				t.Errorf("Inc = %v; want %v", s.Inc, tt.wantInc)
			}
			if w.Tick() != 1 {
				t.Errorf("Tick = %d; want 1", w.Tick())
			}
		})
	}
}

func TestWorld_NewShips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	vp := NewViewport(800, 400)
	w := NewWorld(cfg, vp)

	if w.Ships().Len() != cfg.ShipCount {
		t.Fatalf("got %d ships; want %d", w.Ships().Len(), cfg.ShipCount)
	}
	for i, s := range w.Ships().All() {
		if s.Color == ColorNone {
			t.Fatalf("ship %d was born invisible", i)
		}
		if math.Abs(s.Pos.X) > vp.Width/2 || math.Abs(s.Pos.Y) > vp.Height/2 {
			t.Fatalf("ship %d born outside the viewport at %v", i, s.Pos)
		}
		if s.Speed < cfg.MinSpeed || s.Speed > cfg.MaxSpeed {
			t.Fatalf("ship %d speed %v outside [%v, %v]", i, s.Speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if math.Abs(s.Inc.Len()-s.Speed) > 1e-12 {
			t.Fatalf("ship %d |Inc| = %v; want %v", i, s.Inc.Len(), s.Speed)
		}
		if math.Abs(s.Inc.X) < s.Speed/4-1e-12 {
			t.Fatalf("ship %d |Inc.X| = %v below a quarter of its speed", i, math.Abs(s.Inc.X))
		}
		if math.Abs(s.Delta.Len()-cfg.VectorSize) > 1e-5 {
			t.Fatalf("ship %d |Delta| = %v; want %v", i, s.Delta.Len(), cfg.VectorSize)
		}
	}
}

func TestWorld_SameSeedSameShips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.ShipCount = 50
	w1 := NewWorld(cfg, NewViewport(640, 480))
	w2 := NewWorld(cfg, NewViewport(640, 480))
	for i := range cfg.ShipCount {
		if *w1.Ships().At(i) != *w2.Ships().At(i) {
			t.Fatalf("ship %d differs: %+v vs %+v", i, *w1.Ships().At(i), *w2.Ships().At(i))
		}
	}
}

func TestWorld_SnapshotAndControls(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, NewViewport(800, 800))
	w.addShip(&Ship{Pos: geometry.Vector2D{X: 0.5}, Delta: geometry.Vector2D{X: 0, Y: 0.01}, Color: ColorCyan})

	if w.CurrentColor() != ColorNone {
		t.Errorf("default ripple color = %s; want none", w.CurrentColor())
	}
	w.SetColor(ColorMagenta)
	w.SpawnRipple(geometry.Vector2D{X: -0.5, Y: 0.25})
	w.AdjustMultiplier(Separation, 3)
	w.SetPaused(true)

	snap := w.Snapshot()
	if len(snap.Ships) != 1 || len(snap.Ripples) != 1 {
		t.Fatalf("snapshot has %d ships and %d ripples; want 1 and 1", len(snap.Ships), len(snap.Ripples))
	}
	if got := ColorFromProto(snap.Ripples[0].GetColor()); got != ColorMagenta {
		t.Errorf("ripple color = %s; want magenta", got)
	}
	if got := snap.Ships[0].GetHeading(); math.Abs(got.GetX()) > 1e-12 || math.Abs(got.GetY()-1) > 1e-12 {
		t.Errorf("ship heading = %v; want (0, 1)", got)
	}
	if snap.GetMultipliers().GetSeparation() != 3 {
		t.Errorf("separation = %d; want 3", snap.GetMultipliers().GetSeparation())
	}
	if !snap.GetPaused() {
		t.Error("snapshot should report the pause")
	}
	if ColorFromProto(snap.GetCurrentColor()) != ColorMagenta {
		t.Errorf("current color = %v; want magenta", snap.GetCurrentColor())
	}
}

func BenchmarkWorld_Step(b *testing.B) {
	for _, indexed := range []bool{false, true} {
		name := "brute force"
		if indexed {
			name = "spatial index"
		}
		b.Run(name, func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Seed = 1
			cfg.SpatialIndex = indexed
			w := NewWorld(cfg, NewViewport(800, 800))
			for i := range 40 {
				w.SetColor(Color(i % NumColors))
				w.SpawnRipple(geometry.Vector2D{X: float64(i%8)/4 - 1, Y: float64(i/8)/4 - 0.5})
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w.Step()
				if w.Ripples().Len() == 0 {
					w.SpawnRipple(geometry.Vector2D{})
				}
			}
		})
	}
}
