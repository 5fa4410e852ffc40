package main

import (
	"errors"
	"flag"
	"image"
	"math/rand/v2"
	"os"

	"github.com/automoto/stork/config"
	"github.com/automoto/stork/fonts"
	"github.com/automoto/stork/logging"
	"github.com/automoto/stork/metrics"
	"github.com/automoto/stork/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Err() error
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(log zerolog.Logger, counters *metrics.Counters, seed uint64) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFlightScene(log, counters, seed),
	}
}

// Update stops the game with the run's fatal error, or cleanly once the
// crash overlay has finished.
func (g *Game) Update() error {
	g.scene.Update()
	if err := g.scene.Err(); err != nil {
		return err
	}
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", ".", "Directory containing "+config.FileName)
	seed := flag.Uint64("seed", 0, "World seed (0 = use config or pick one at random)")
	debug := flag.Bool("debug", false, "Start with the collision overlay shown")
	flag.Parse()

	log := logging.New(os.Stderr, config.Log.Level, true)
	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Str("dir", *configDir).Msg("failed to load config")
	}
	log = logging.New(os.Stderr, config.Log.Level, true)

	if *seed != 0 {
		config.World.Seed = *seed
	}
	if *debug {
		config.Debug.ShowHitboxes = true
	}
	worldSeed := config.World.Seed
	if worldSeed == 0 && !config.World.FixedSeed {
		worldSeed = rand.Uint64()
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	counters, err := metrics.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Stork")
	ebiten.SetTPS(config.C.TPS)

	err = ebiten.RunGame(NewGame(log, counters, worldSeed))
	switch {
	case err == nil, errors.Is(err, ebiten.Termination):
		log.Info().Msg("Game Over!")
	default:
		log.Error().Err(err).Msg("session halted")
		os.Exit(1)
	}
}
