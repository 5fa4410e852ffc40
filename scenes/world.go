package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/metrics"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/systems"
	"github.com/automoto/stork/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// FlightScene is one run: the stork glides until it hits a building.
type FlightScene struct {
	ecs      *ecs.ECS
	log      zerolog.Logger
	counters *metrics.Counters
	seed     uint64
	once     sync.Once
}

func NewFlightScene(log zerolog.Logger, counters *metrics.Counters, seed uint64) *FlightScene {
	return &FlightScene{log: log, counters: counters, seed: seed}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// Err returns the fatal error that halted the run, if any.
func (fs *FlightScene) Err() error {
	if fs.ecs == nil {
		return nil
	}
	if session, ok := systems.GetSession(fs.ecs); ok {
		return session.Err
	}
	return nil
}

// Done reports whether the run ended and the crash overlay has fully faded in.
func (fs *FlightScene) Done() bool {
	if fs.ecs == nil {
		return false
	}
	session, ok := systems.GetSession(fs.ecs)
	if !ok || !session.Over {
		return false
	}
	return systems.GetOrCreateGameOver(fs.ecs).Done
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Flight before camera and collision, camera before streaming
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFlight))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateStreaming(fs.log, fs.counters)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateCollision(fs.log, fs.counters)))

	// Runs once the session is over
	ecs.AddSystem(systems.UpdateGameOver)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	fs.ecs = ecs
	fs.populate()
}

// populate creates the run's singletons and the flyer. Tiles stream in on
// the first tick.
func (fs *FlightScene) populate() {
	cameraPos := dmath.Vec2{X: 0, Y: float64(cfg.C.Height) / 2}

	world := factory.CreateWorld(fs.ecs, fs.seed, cfg.World.MaxVisibleWidth, cfg.World.EvictRight)
	streamer := components.World.Get(world).Streamer
	left, _ := streamer.Window(cameraPos.X)

	factory.CreateSpace(fs.ecs,
		factory.SpaceWidth(cfg.World.MaxVisibleWidth),
		cfg.World.SpaceHeight,
		cfg.World.SpaceCellSize, cfg.World.SpaceCellSize,
		factory.SpaceOrigin(left, cfg.World.SpaceFloor),
	)
	factory.CreateCamera(fs.ecs, cameraPos, cfg.Camera.Zoom)

	tps := cfg.C.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	factory.CreateSession(fs.ecs, 1/float64(tps))

	factory.CreateFlyer(fs.ecs, gamemath.FlyerState{
		Position: dmath.Vec2{X: cfg.Flyer.StartX, Y: cfg.Flyer.StartY},
		Speed:    cfg.Flyer.StartSpeed,
		Heading:  cfg.Flyer.StartHeading,
	}, cfg.Flyer.CollisionSize())

	fs.log.Info().
		Uint64("seed", fs.seed).
		Int("phase", streamer.Generator().Offset()).
		Int("width", cfg.C.Width).
		Int("height", cfg.C.Height).
		Int("tps", tps).
		Msg("session started")
}
