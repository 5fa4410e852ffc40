package config

import (
	"image/color"

	"github.com/automoto/stork/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// FlightConfig contains the glide model constants
type FlightConfig struct {
	AirResistance        float64
	Gravity              float64
	StallSpeed           float64
	StallTurnRate        float64 // deg/s at the stall speed, grows as 1/speed^2 below it
	MaxAcceleration      float64
	TopAccelerationSpeed float64
	TurnSpeed            float64 // deg/s

	// Heading clamps. Still being tuned: earlier builds used 180/0.
	PitchUpCeiling float64
	PitchDownFloor float64
}

// Params converts the config into integrator parameters.
func (f FlightConfig) Params() gamemath.FlightParams {
	return gamemath.FlightParams{
		AirResistance:        f.AirResistance,
		Gravity:              f.Gravity,
		StallSpeed:           f.StallSpeed,
		StallTurnRate:        f.StallTurnRate,
		MaxAcceleration:      f.MaxAcceleration,
		TopAccelerationSpeed: f.TopAccelerationSpeed,
		TurnSpeed:            f.TurnSpeed,
		PitchUpCeiling:       f.PitchUpCeiling,
		PitchDownFloor:       f.PitchDownFloor,
	}
}

// FlyerConfig contains the stork's spawn state and collision size
type FlyerConfig struct {
	StartX       float64 // meters
	StartY       float64 // meters
	StartSpeed   float64
	StartHeading float64

	CollisionWidth  float64 // pixels
	CollisionHeight float64
}

// CollisionSize returns the flyer's box size in pixels.
func (f FlyerConfig) CollisionSize() dmath.Vec2 {
	return dmath.Vec2{X: f.CollisionWidth, Y: f.CollisionHeight}
}

// WorldConfig contains procedural world and streaming configuration
type WorldConfig struct {
	Seed            uint64  // 0 picks a random seed at startup
	FixedSeed       bool    // use Seed even when it is 0
	MaxVisibleWidth float64 // pixels either side of the camera that must be streamed in
	EvictRight      bool    // also reclaim tiles right of the window

	// Collision space (floating origin, follows the streaming window)
	SpaceFloor    float64 // lowest world y covered
	SpaceHeight   int
	SpaceCellSize int
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	Zoom         float64
	LeftEdge     float64
	RightEdge    float64
	TargetOffset float64
	RampWidth    float64
}

// Params converts the config into follow parameters.
func (c CameraConfig) Params() gamemath.CameraParams {
	return gamemath.CameraParams{
		LeftEdge:     c.LeftEdge,
		RightEdge:    c.RightEdge,
		TargetOffset: c.TargetOffset,
		RampWidth:    c.RampWidth,
	}
}

// GameOverConfig contains crash overlay configuration
type GameOverConfig struct {
	FadeSeconds  float64
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	TitleY       float64
	MessageY     float64
}

// UIConfig contains HUD and debug overlay configuration
type UIConfig struct {
	HUDMargin       float64
	HUDLineHeight   float64
	HUDFontSize     float64
	HUDTextColor    color.RGBA
	SkyColor        color.RGBA
	TileHeight      float64 // height of the terrain backdrop drawn per tile
	DebugBoxColors  map[string]color.RGBA
	DebugSpaceColor color.RGBA
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Flight FlightConfig
var Flyer FlyerConfig
var World WorldConfig
var Camera CameraConfig
var GameOver GameOverConfig
var UI UIConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 135, G: 200, B: 235, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration instance to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	p := gamemath.DefaultFlightParams()
	Flight = FlightConfig{
		AirResistance:        p.AirResistance,
		Gravity:              p.Gravity,
		StallSpeed:           p.StallSpeed,
		StallTurnRate:        p.StallTurnRate,
		MaxAcceleration:      p.MaxAcceleration,
		TopAccelerationSpeed: p.TopAccelerationSpeed,
		TurnSpeed:            p.TurnSpeed,
		PitchUpCeiling:       p.PitchUpCeiling,
		PitchDownFloor:       p.PitchDownFloor,
	}

	Flyer = FlyerConfig{
		StartX:          0,
		StartY:          3,
		StartSpeed:      2,
		StartHeading:    100, // slightly nose up
		CollisionWidth:  64,
		CollisionHeight: 32,
	}

	World = WorldConfig{
		Seed:            0,
		FixedSeed:       false,
		MaxVisibleWidth: 2000,
		EvictRight:      false,
		SpaceFloor:      -1000,
		SpaceHeight:     6000,
		SpaceCellSize:   64,
	}

	c := gamemath.DefaultCameraParams()
	Camera = CameraConfig{
		Zoom:         1,
		LeftEdge:     c.LeftEdge,
		RightEdge:    c.RightEdge,
		TargetOffset: c.TargetOffset,
		RampWidth:    c.RampWidth,
	}

	GameOver = GameOverConfig{
		FadeSeconds:  1.5,
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		TextColor:    White,
		Title:        "GAME OVER",
		TitleY:       300,
		MessageY:     360,
	}

	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 18,
		HUDFontSize:   14,
		HUDTextColor:  White,
		SkyColor:      SkyBlue,
		TileHeight:    400,
		DebugBoxColors: map[string]color.RGBA{
			"flyer":    Green,
			"obstacle": Red,
		},
		DebugSpaceColor: Cyan,
	}

	Log = LogConfig{
		Level: "info",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
