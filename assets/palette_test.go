package assets

import (
	"testing"

	"github.com/automoto/stork/shared/worldgen"
	"github.com/stretchr/testify/assert"
)

func TestColor_EveryWorldKeyResolves(t *testing.T) {
	terrains := []worldgen.Terrain{
		worldgen.Countryside, worldgen.Village, worldgen.CityMinor,
		worldgen.CityMajor, worldgen.CityMetropolis,
	}
	for _, tr := range terrains {
		assert.NotEqual(t, Missing, Color(tr.AssetKey()), tr.AssetKey())
	}

	for _, k := range []worldgen.ObstacleKind{worldgen.Small, worldgen.Medium, worldgen.Large} {
		assert.NotEqual(t, Missing, Color(k.AssetKey()), k.AssetKey())
	}

	assert.NotEqual(t, Missing, Color(FlyerKey))
}

func TestColor_UnknownKey(t *testing.T) {
	assert.Equal(t, Missing, Color("tiles/ocean"))
}
