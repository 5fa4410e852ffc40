package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAll(t *testing.T) {
	t.Helper()
	t.Cleanup(viper.Reset)
	t.Cleanup(Reset)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	resetAll(t)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"world": { "seed": 1234, "evictRight": true },
		"flight": { "pitchUpCeiling": 180, "pitchDownFloor": 0 },
		"debug": { "showHitboxes": true }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", Log.Level)
	assert.Equal(t, uint64(1234), World.Seed)
	assert.True(t, World.EvictRight)
	assert.Equal(t, 180.0, Flight.PitchUpCeiling)
	assert.Equal(t, 0.0, Flight.PitchDownFloor)
	assert.True(t, Debug.ShowHitboxes)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	resetAll(t)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", Log.Level)
	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, 720, C.Height)
	assert.Equal(t, 60, C.TPS)
	assert.Equal(t, uint64(0), World.Seed)
	assert.Equal(t, 2000.0, World.MaxVisibleWidth)
	assert.False(t, World.EvictRight)
	assert.Equal(t, 175.0, Flight.PitchUpCeiling)
	assert.Equal(t, 5.0, Flight.PitchDownFloor)
	assert.Equal(t, 2.0, Flyer.StartSpeed)
	assert.Equal(t, 100.0, Flyer.StartHeading)
	assert.Equal(t, 1.0, Camera.Zoom)
}

func TestLoad_MalformedFile(t *testing.T) {
	resetAll(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel":`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
	assert.ErrorAs(t, err, &viper.ConfigParseError{})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	resetAll(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"world": {"seed": 1}}`), 0644))
	t.Setenv("STORK_WORLD_SEED", "42")
	t.Setenv("STORK_LOGLEVEL", "warn")
	t.Setenv("STORK_FLIGHT_GRAVITY", "9.81")

	require.NoError(t, Load(dir))

	assert.Equal(t, uint64(42), World.Seed)
	assert.Equal(t, "warn", Log.Level)
	assert.Equal(t, 9.81, Flight.Gravity)
}

func TestLoad_TunesEveryModelConstant(t *testing.T) {
	resetAll(t)

	dir := t.TempDir()
	cfg := `{
		"flight": { "stallSpeed": 1.5, "stallTurnRate": 30, "maxAcceleration": 12, "topAccelerationSpeed": 5 },
		"camera": { "targetOffset": 0.25, "rampWidth": 0.2 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))
	t.Setenv("STORK_FLYER_STARTY", "12")

	require.NoError(t, Load(dir))

	p := Flight.Params()
	assert.Equal(t, 1.5, p.StallSpeed)
	assert.Equal(t, 30.0, p.StallTurnRate)
	assert.Equal(t, 12.0, p.MaxAcceleration)
	assert.Equal(t, 5.0, p.TopAccelerationSpeed)

	c := Camera.Params()
	assert.Equal(t, 0.25, c.TargetOffset)
	assert.Equal(t, 0.2, c.RampWidth)
	assert.Equal(t, 0.2, c.LeftEdge)

	assert.Equal(t, 12.0, Flyer.StartY)
}

func TestFlightConfig_Params(t *testing.T) {
	resetAll(t)

	Flight.TurnSpeed = 50
	p := Flight.Params()

	assert.Equal(t, 50.0, p.TurnSpeed)
	assert.Equal(t, Flight.Gravity, p.Gravity)
	assert.Equal(t, Flight.PitchUpCeiling, p.PitchUpCeiling)
}

func TestInputBindings_CoverEveryAction(t *testing.T) {
	for a := ActionNone + 1; a < ActionCount; a++ {
		b, ok := Input.Bindings[a]
		require.True(t, ok, "action %d has no binding", a)
		assert.NotEmpty(t, b.Keys)
	}
}
