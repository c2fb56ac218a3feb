package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pb"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
)

const windowTitle = "Ripples"

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	cfg      *Config
	viewport Viewport // mirror of the world's, used to map clicks and draw

	// UI Controls
	palette     []*ui.Button
	pauseToggle *ui.Checkbox
	paused      bool
	title       string

	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
	chars      []rune

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame spawns the world actor and builds the window controls around it.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, cue AudioCue) (*Game, error) {
	// Buffer to avoid blocking the world
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	vp := NewViewport(cfg.WindowWidth, cfg.WindowHeight)
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg, vp, cue))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
		viewport:   vp,
		whiteImage: ebiten.NewImage(3, 3),
	}
	g.whiteImage.Fill(color.White)

	for i := 0; i < NumColors; i++ {
		c := Color(i)
		swatch := c.RGBA(1)
		if !c.IsVisible() {
			swatch = color.RGBA{R: 40, G: 40, B: 40, A: 255}
		}
		b := ui.NewButton(10+float64(i)*28, 10, 22, 16, c.String()[:1], swatch, func() {
			g.tell(&pb.SetRippleColor{Color: c.ToProto()})
		})
		g.palette = append(g.palette, b)
	}
	g.pauseToggle = ui.NewCheckbox(10, 44, "pause", false)
	return g, nil
}

func (g *Game) tell(msg proto.Message) {
	actor.Tell(g.ctx, g.worldPID, msg)
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Widgets first, a click on them must not spawn a ripple
	overUI := false
	for _, b := range g.palette {
		if b.Update() {
			overUI = true
		}
	}
	if g.pauseToggle.Update() {
		overUI = true
		g.setPaused(g.pauseToggle.Value)
	}

	// 2. Keyboard
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.applyAction(ActionForKey(r))
	}

	// 3. Mouse: one ripple per press
	if !overUI && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := g.viewport.ToWorld(float64(mx), float64(my))
		g.tell(&pb.SpawnRipple{Position: &pb.Vector2D{X: p.X, Y: p.Y}})
	}

	// 4. Latest state, non-blocking
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}
	g.syncControls()

	// 5. Trigger Simulation Step
	g.tell(&pb.Tick{DeltaTime: int64(g.cfg.TickMillis)})
	return nil
}

func (g *Game) applyAction(a Action) {
	switch a.Kind {
	case ActionSelectColor:
		g.tell(&pb.SetRippleColor{Color: a.Color.ToProto()})
	case ActionAdjustMultiplier:
		g.tell(&pb.AdjustMultiplier{Multiplier: a.Multiplier.ToProto(), Delta: int32(a.Delta)})
	case ActionTogglePause:
		g.setPaused(!g.paused)
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.pauseToggle.Value = paused
	g.tell(&pb.SetPaused{Paused: paused})
}

// syncControls reflects the last snapshot in the palette and the window title.
func (g *Game) syncControls() {
	current := ColorFromProto(g.lastState.GetCurrentColor())
	for i, b := range g.palette {
		b.Selected = Color(i) == current
	}

	m := g.lastState.GetMultipliers()
	title := fmt.Sprintf("%s - cohesion %d, alignment %d, separation %d",
		windowTitle, m.GetCohesion(), m.GetAlignment(), m.GetSeparation())
	if title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.Black)
	g.drawRipples(screen)
	g.drawShips(screen)

	for _, b := range g.palette {
		b.Draw(screen)
	}
	g.pauseToggle.Draw(screen)
	g.drawHUD(screen)
}

// drawRipples fades each circle as it grows, invisible ripples are skipped.
func (g *Game) drawRipples(screen *ebiten.Image) {
	scale := g.viewport.Scale()
	for _, r := range g.lastState.GetRipples() {
		c := ColorFromProto(r.GetColor())
		if !c.IsVisible() {
			continue
		}
		fade := (g.cfg.FinalRadius - r.GetRadius()) / (g.cfg.FinalRadius - g.cfg.InitialRadius)
		x, y := g.viewport.ToScreen(geometry.Vector2D{X: r.GetPosition().GetX(), Y: r.GetPosition().GetY()})
		vector.StrokeCircle(screen,
			float32(x), float32(y),
			float32(r.GetRadius()*scale),
			float32(3*clamp01(fade)),
			c.RGBA(fade),
			true)
	}
}

// drawShips batches every ship into a single DrawTriangles call.
func (g *Game) drawShips(screen *ebiten.Image) {
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	sr := g.cfg.ShipRadius

	for _, s := range g.lastState.GetShips() {
		pos := geometry.Vector2D{X: s.GetPosition().GetX(), Y: s.GetPosition().GetY()}
		angle := geometry.Vector2D{X: s.GetHeading().GetX(), Y: s.GetHeading().GetY()}.Angle()
		cr, cg, cb := ColorFromProto(s.GetColor()).RGB()

		base := uint16(len(g.vertices))
		for _, p := range shipOutline(pos, angle, sr) {
			x, y := g.viewport.ToScreen(p)
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
			})
		}
		// fan around the tip: tip, left wing, center, right wing
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)

		// uint16 indices: flush before overflowing
		if len(g.vertices) > math.MaxUint16-4 {
			screen.DrawTriangles(g.vertices, g.indices, g.whiteImage, &ebiten.DrawTrianglesOptions{})
			g.vertices = g.vertices[:0]
			g.indices = g.indices[:0]
		}
	}
	if len(g.vertices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, g.whiteImage, &ebiten.DrawTrianglesOptions{})
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	m := g.lastState.GetMultipliers()
	msg := fmt.Sprintf("cohesion %d  alignment %d  separation %d\nripple color: %s\nships: %d  ripples: %d  tick: %d",
		m.GetCohesion(), m.GetAlignment(), m.GetSeparation(),
		ColorFromProto(g.lastState.GetCurrentColor()),
		len(g.lastState.GetShips()), len(g.lastState.GetRipples()), g.lastState.GetTick())
	ebitenutil.DebugPrintAt(screen, msg, 10, 68)

	stats := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, stats, g.viewport.PixelWidth-120, 10)
}

// Layout follows the window size: the world keeps 2 units on its shorter side.
func (g *Game) Layout(w, h int) (int, int) {
	if w != g.viewport.PixelWidth || h != g.viewport.PixelHeight {
		if g.viewport.Resize(w, h) {
			g.tell(&pb.ResizeViewport{Width: int32(w), Height: int32(h)})
		}
	}
	return max(w, 1), max(h, 1)
}
