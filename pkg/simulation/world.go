package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
)

// World holds every ship, every ripple and the knobs the user turns.
// It is owned by a single WorldActor and is not safe for concurrent use.
type World struct {
	cfg      *Config
	rng      *rand.Rand
	viewport Viewport
	ships    *Store[*Ship]
	ripples  *Store[*Ripple]
	grid     *rippleGrid // nil when the spatial index is disabled

	multipliers  Multipliers
	currentColor Color
	paused       bool
	tick         uint64
}

// NewWorld creates a world with cfg.ShipCount ships spread over the viewport.
func NewWorld(cfg *Config, vp Viewport) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w := &World{
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		viewport: vp,
		ships:    NewStore[*Ship](cfg.ShipCount),
		ripples:  NewStore[*Ripple](16),
		multipliers: Multipliers{
			Cohesion:   cfg.Cohesion,
			Alignment:  cfg.Alignment,
			Separation: cfg.Separation,
		},
		currentColor: ColorNone,
	}
	if cfg.SpatialIndex {
		w.grid = newRippleGrid(cfg.FinalRadius)
	}
	for i := 0; i < cfg.ShipCount; i++ {
		w.ships.Add(NewShip(w.rng, cfg, vp))
	}
	return w
}

// Step advances the world by one tick.
// The order matters: every pass may overwrite the position left by the previous one.
func (w *World) Step() {
	w.advanceRipples()
	w.advanceShips()
	if w.grid != nil {
		w.grid.rebuild(w.ripples)
	}
	w.applyDisplacement()
	w.applyCohesion()
	w.applyAlignment()
	w.applySeparation()
	w.applyBoundary()
	w.tick++
}

func (w *World) advanceRipples() {
	w.ripples.Retain(func(r *Ripple) bool {
		return r.Grow(w.cfg.RadiusIncrement, w.cfg.FinalRadius)
	})
}

func (w *World) advanceShips() {
	for _, s := range w.ships.All() {
		s.Advance()
	}
}

// SpawnRipple adds a ripple of the current color centered at pos.
func (w *World) SpawnRipple(pos geometry.Vector2D) *Ripple {
	r := &Ripple{Pos: pos, Radius: w.cfg.InitialRadius, Color: w.currentColor}
	w.ripples.Add(r)
	return r
}

// addShip inserts an already built ship, after the ones created at startup.
func (w *World) addShip(s *Ship) {
	w.ships.Add(s)
}

func (w *World) SetColor(c Color) {
	if int(c) >= NumColors {
		c = ColorNone
	}
	w.currentColor = c
}

func (w *World) AdjustMultiplier(k MultiplierKind, delta int) int {
	return w.multipliers.Adjust(k, delta)
}

// Resize follows the window size. Empty windows are ignored.
func (w *World) Resize(pixelWidth, pixelHeight int) bool {
	return w.viewport.Resize(pixelWidth, pixelHeight)
}

func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

func (w *World) Paused() bool { return w.paused }
func (w *World) Tick() uint64 { return w.tick }
func (w *World) CurrentColor() Color { return w.currentColor }
func (w *World) Multipliers() Multipliers { return w.multipliers }
func (w *World) Viewport() Viewport { return w.viewport }
func (w *World) Ships() *Store[*Ship] { return w.ships }
func (w *World) Ripples() *Store[*Ripple] { return w.ripples }

// Snapshot copies the state the renderer needs into a message.
func (w *World) Snapshot() *pb.WorldSnapshot {
	snap := &pb.WorldSnapshot{
		Ships:        make([]*pb.ShipState, 0, w.ships.Len()),
		Ripples:      make([]*pb.RippleState, 0, w.ripples.Len()),
		Multipliers:  w.multipliers.ToProto(),
		CurrentColor: w.currentColor.ToProto(),
		Tick:         w.tick,
		Paused:       w.paused,
	}
	for _, s := range w.ships.All() {
		snap.Ships = append(snap.Ships, s.ToProto())
	}
	for _, r := range w.ripples.All() {
		snap.Ripples = append(snap.Ripples, r.ToProto())
	}
	return snap
}
