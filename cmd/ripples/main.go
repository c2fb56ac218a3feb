// Command ripples runs the ripple swarm: ships bouncing around a window,
// pushed by the colored ripples you spawn with the mouse.
//
// Usage:
//
//	ripples [config_file]
//
// The optional argument is a .json or .toml config file, any key it omits keeps its default.
//
// Keys: w r y g c b m n pick the ripple color (n is invisible and pushes every ship),
// K/k A/a S/s raise or lower the cohesion, alignment and separation multipliers,
// space pauses.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/audio"
	"github.com/lao-tseu-is-alive/go-ripple-swarm/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

const usage = `Usage: ripples [config_file]

The first argument is optional and is the path to a JSON or TOML config file.
`

func main() {
	var cfg *simulation.Config
	var err error
	switch len(os.Args) {
	case 1:
		cfg = simulation.DefaultConfig()
	case 2:
		cfg, err = simulation.LoadConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	logger := golog.New(cfg.Level(), os.Stdout)

	// 1. Create the Actor System
	system, err := actor.NewActorSystem("RippleSystem",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("failed to create actor system: %v", err)
	}

	// 2. Start the System
	if err := system.Start(ctx); err != nil {
		log.Fatalf("failed to start actor system: %v", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	// 3. Audio is optional, the demo runs silent without a device
	var cue simulation.AudioCue = audio.Silent{}
	if cfg.Audio {
		beeper := audio.NewBeeper(audio.DefaultSampleRate)
		if err := beeper.Initialize(); err != nil {
			logger.Warnf("audio disabled: %v", err)
		} else {
			defer beeper.Close()
			cue = beeper
		}
	}

	game, err := simulation.GetNewGame(ctx, cfg, system, cue)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Ripples")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TicksPerSecond())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
