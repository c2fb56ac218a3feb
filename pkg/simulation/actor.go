package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// AudioCue receives the tone to play when a ripple is spawned.
type AudioCue interface {
	Play(freqHz float64, d time.Duration)
}

// WorldActor owns the World. Ticks, clicks and key presses all reach it as messages,
// so they are applied one at a time in mailbox order.
type WorldActor struct {
	world      *World
	cfg        *Config
	snapshotCh chan<- *pb.WorldSnapshot
	audio      AudioCue

	// --- Benchmark Stats ---
	tickCount   int
	spawnCount  int
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the actor and its world. snapshotCh may be nil when nobody renders.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config, vp Viewport, cue AudioCue) *WorldActor {
	if cue == nil {
		cue = noAudio{}
	}
	return &WorldActor{
		world:       NewWorld(cfg, vp),
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		audio:       cue,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is launching %d ships...", w.world.ships.Len())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		vp := w.world.Viewport()
		ctx.Logger().Infof("World started: %.2fx%.2f units, spatial index %t", vp.Width, vp.Height, w.cfg.SpatialIndex)

	case *pb.Tick:
		w.logBenchmarks(ctx)
		if !w.world.Paused() {
			w.world.Step()
			w.tickCount++
		}
		w.pushSnapshot()

	case *pb.SpawnRipple:
		p := msg.GetPosition()
		r := w.world.SpawnRipple(geometry.Vector2D{X: p.GetX(), Y: p.GetY()})
		w.spawnCount++
		w.audio.Play(w.cfg.BeepFrequency(r.Color), w.cfg.BeepDuration())
		ctx.Logger().Debugf("ripple %s at %s", r.Color, r.Pos)

	case *pb.SetRippleColor:
		w.world.SetColor(ColorFromProto(msg.GetColor()))
		ctx.Logger().Debugf("ripple color set to %s", w.world.CurrentColor())

	case *pb.AdjustMultiplier:
		kind := MultiplierKindFromProto(msg.GetMultiplier())
		v := w.world.AdjustMultiplier(kind, int(msg.GetDelta()))
		ctx.Logger().Debugf("%s multiplier is now %d", kind, v)

	case *pb.ResizeViewport:
		if w.world.Resize(int(msg.GetWidth()), int(msg.GetHeight())) {
			vp := w.world.Viewport()
			ctx.Logger().Debugf("viewport resized to %.2fx%.2f units", vp.Width, vp.Height)
		}

	case *pb.SetPaused:
		w.world.SetPaused(msg.GetPaused())

	case *pb.GetSnapshot:
		ctx.Response(w.world.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Ships: %d | Ripples: %d | Spawned: %d",
			w.tickCount, w.world.ships.Len(), w.world.ripples.Len(), w.spawnCount)
		w.tickCount = 0
		w.spawnCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.world.Snapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}

type noAudio struct{}

func (noAudio) Play(float64, time.Duration) {}
