package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsetsOf(ps []Placement) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Offset.X
	}
	return out
}

func kindsOf(ps []Placement) []ObstacleKind {
	out := make([]ObstacleKind, len(ps))
	for i, p := range ps {
		out[i] = p.Kind
	}
	return out
}

func TestPlaceObstacles_Countryside(t *testing.T) {
	got, err := PlaceObstacles(Countryside, 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlaceObstacles_Village(t *testing.T) {
	tests := []struct {
		index int
		x     float64
	}{
		{0, -300}, {1, -150}, {2, 200}, {3, -300}, {-1, 200}, {-3, -300},
	}
	for _, tt := range tests {
		got, err := PlaceObstacles(Village, tt.index)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, Small, got[0].Kind)
		assert.Equal(t, tt.x, got[0].Offset.X, "index %d", tt.index)
		assert.Equal(t, 31.0, got[0].Offset.Y)
	}
}

func TestPlaceObstacles_CityMinor(t *testing.T) {
	got, err := PlaceObstacles(CityMinor, 5)
	require.NoError(t, err)
	assert.Equal(t, []ObstacleKind{Small, Medium}, kindsOf(got))
	assert.Equal(t, []float64{-150, 350}, offsetsOf(got))

	for i := -24; i < 24; i++ {
		got, err := PlaceObstacles(CityMinor, i)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0].Offset.X, got[1].Offset.X, "index %d", i)
	}
}

func TestPlaceObstacles_CityMajor(t *testing.T) {
	got, err := PlaceObstacles(CityMajor, 0)
	require.NoError(t, err)
	assert.Equal(t, []ObstacleKind{Medium, Small, Small}, kindsOf(got))
	assert.Equal(t, []float64{-400, -150, 0}, offsetsOf(got))

	got, err = PlaceObstacles(CityMajor, 7)
	require.NoError(t, err)
	assert.Equal(t, []ObstacleKind{Medium, Medium, Small}, kindsOf(got))
	assert.Equal(t, []float64{0, 350, -150}, offsetsOf(got))

	got, err = PlaceObstacles(CityMajor, 2)
	require.NoError(t, err)
	assert.Equal(t, []ObstacleKind{Medium, Medium, Medium}, kindsOf(got))
}

func TestPlaceObstacles_CityMetropolis(t *testing.T) {
	got, err := PlaceObstacles(CityMetropolis, 7)
	require.NoError(t, err)
	assert.Equal(t, []ObstacleKind{Large, Medium, Medium, Medium}, kindsOf(got))
	assert.Equal(t, []float64{0, 400, -150, 200}, offsetsOf(got))
	assert.Equal(t, 155.0, got[0].Offset.Y)
	assert.Equal(t, 72.0, got[1].Offset.Y)
}

func TestPlaceObstacles_SlotsNeverShared(t *testing.T) {
	for _, terrain := range []Terrain{CityMajor, CityMetropolis} {
		for i := -100; i <= 100; i++ {
			got, err := PlaceObstacles(terrain, i)
			require.NoError(t, err)

			seen := map[float64]bool{}
			for _, p := range got {
				assert.False(t, seen[p.Offset.X], "%v index %d reuses slot %v", terrain, i, p.Offset.X)
				seen[p.Offset.X] = true
			}
		}
	}
}

func TestPlaceObstacles_IsPure(t *testing.T) {
	for _, terrain := range []Terrain{Village, CityMinor, CityMajor, CityMetropolis} {
		for i := 0; i < 30; i++ {
			a, err := PlaceObstacles(terrain, i)
			require.NoError(t, err)
			b, err := PlaceObstacles(terrain, i)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
	assert.Equal(t, []float64{-400, -150, 0, 200, 350}, cityMajorSlots)
}

func TestPlaceObstacles_UnknownTerrain(t *testing.T) {
	_, err := PlaceObstacles(Terrain(42), 0)
	require.Error(t, err)
}

func TestPlacement_WorldBox(t *testing.T) {
	got, err := PlaceObstacles(Village, 2)
	require.NoError(t, err)

	box := got[0].Box(2)
	assert.Equal(t, 2200.0, box.Center.X)
	assert.Equal(t, 31.0, box.Center.Y)
	assert.Equal(t, 0.0, box.Min().Y, "obstacles rest on the ground line")
	assert.Equal(t, Small.Footprint(), box.Size)
}

func TestObstacleKind_Keys(t *testing.T) {
	assert.Equal(t, "collidables/house_1", Small.AssetKey())
	assert.Equal(t, "collidables/house_3", Large.AssetKey())
	assert.Equal(t, "medium", Medium.String())
}
