package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up by Load.
const FileName = "stork.json"

// EnvPrefix namespaces environment overrides, e.g. STORK_WORLD_SEED.
const EnvPrefix = "STORK"

// Load layers stork.json from configDir and STORK_* environment variables
// over the built-in defaults. A missing file is not an error.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	apply()
	return nil
}

func setDefaults() {
	viper.SetDefault("logLevel", Log.Level)

	viper.SetDefault("window.width", C.Width)
	viper.SetDefault("window.height", C.Height)
	viper.SetDefault("window.tps", C.TPS)

	viper.SetDefault("world.seed", World.Seed)
	viper.SetDefault("world.fixedSeed", World.FixedSeed)
	viper.SetDefault("world.maxVisibleWidth", World.MaxVisibleWidth)
	viper.SetDefault("world.evictRight", World.EvictRight)
	viper.SetDefault("world.spaceFloor", World.SpaceFloor)
	viper.SetDefault("world.spaceHeight", World.SpaceHeight)
	viper.SetDefault("world.spaceCellSize", World.SpaceCellSize)

	viper.SetDefault("camera.zoom", Camera.Zoom)
	viper.SetDefault("camera.leftEdge", Camera.LeftEdge)
	viper.SetDefault("camera.rightEdge", Camera.RightEdge)
	viper.SetDefault("camera.targetOffset", Camera.TargetOffset)
	viper.SetDefault("camera.rampWidth", Camera.RampWidth)

	viper.SetDefault("flight.pitchUpCeiling", Flight.PitchUpCeiling)
	viper.SetDefault("flight.pitchDownFloor", Flight.PitchDownFloor)
	viper.SetDefault("flight.turnSpeed", Flight.TurnSpeed)
	viper.SetDefault("flight.gravity", Flight.Gravity)
	viper.SetDefault("flight.airResistance", Flight.AirResistance)
	viper.SetDefault("flight.stallSpeed", Flight.StallSpeed)
	viper.SetDefault("flight.stallTurnRate", Flight.StallTurnRate)
	viper.SetDefault("flight.maxAcceleration", Flight.MaxAcceleration)
	viper.SetDefault("flight.topAccelerationSpeed", Flight.TopAccelerationSpeed)

	viper.SetDefault("flyer.startX", Flyer.StartX)
	viper.SetDefault("flyer.startY", Flyer.StartY)
	viper.SetDefault("flyer.startSpeed", Flyer.StartSpeed)
	viper.SetDefault("flyer.startHeading", Flyer.StartHeading)
	viper.SetDefault("flyer.collisionWidth", Flyer.CollisionWidth)
	viper.SetDefault("flyer.collisionHeight", Flyer.CollisionHeight)

	viper.SetDefault("gameOver.fadeSeconds", GameOver.FadeSeconds)

	viper.SetDefault("debug.showHitboxes", Debug.ShowHitboxes)
}

func apply() {
	Log.Level = viper.GetString("logLevel")

	C.Width = viper.GetInt("window.width")
	C.Height = viper.GetInt("window.height")
	C.TPS = viper.GetInt("window.tps")

	World.Seed = viper.GetUint64("world.seed")
	World.FixedSeed = viper.GetBool("world.fixedSeed")
	World.MaxVisibleWidth = viper.GetFloat64("world.maxVisibleWidth")
	World.EvictRight = viper.GetBool("world.evictRight")
	World.SpaceFloor = viper.GetFloat64("world.spaceFloor")
	World.SpaceHeight = viper.GetInt("world.spaceHeight")
	World.SpaceCellSize = viper.GetInt("world.spaceCellSize")

	Camera.Zoom = viper.GetFloat64("camera.zoom")
	Camera.LeftEdge = viper.GetFloat64("camera.leftEdge")
	Camera.RightEdge = viper.GetFloat64("camera.rightEdge")
	Camera.TargetOffset = viper.GetFloat64("camera.targetOffset")
	Camera.RampWidth = viper.GetFloat64("camera.rampWidth")

	Flight.PitchUpCeiling = viper.GetFloat64("flight.pitchUpCeiling")
	Flight.PitchDownFloor = viper.GetFloat64("flight.pitchDownFloor")
	Flight.TurnSpeed = viper.GetFloat64("flight.turnSpeed")
	Flight.Gravity = viper.GetFloat64("flight.gravity")
	Flight.AirResistance = viper.GetFloat64("flight.airResistance")
	Flight.StallSpeed = viper.GetFloat64("flight.stallSpeed")
	Flight.StallTurnRate = viper.GetFloat64("flight.stallTurnRate")
	Flight.MaxAcceleration = viper.GetFloat64("flight.maxAcceleration")
	Flight.TopAccelerationSpeed = viper.GetFloat64("flight.topAccelerationSpeed")

	Flyer.StartX = viper.GetFloat64("flyer.startX")
	Flyer.StartY = viper.GetFloat64("flyer.startY")
	Flyer.StartSpeed = viper.GetFloat64("flyer.startSpeed")
	Flyer.StartHeading = viper.GetFloat64("flyer.startHeading")
	Flyer.CollisionWidth = viper.GetFloat64("flyer.collisionWidth")
	Flyer.CollisionHeight = viper.GetFloat64("flyer.collisionHeight")

	GameOver.FadeSeconds = viper.GetFloat64("gameOver.fadeSeconds")

	Debug.ShowHitboxes = viper.GetBool("debug.showHitboxes")
}
