package worldgen

import (
	"math"
	"testing"

	"github.com/automoto/stork/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		sum  float64
		want Terrain
	}{
		{0, Countryside},
		{0.5, Countryside},
		{1.0, Countryside},
		{math.Nextafter(1, 2), Village},
		{2.0, Village},
		{2.5, CityMinor},
		{3.0, CityMinor},
		{4.0, CityMajor},
		{4.5, CityMetropolis},
		{5.0, CityMetropolis},
	}
	for _, tt := range tests {
		got, err := Categorize(tt.sum)
		require.NoError(t, err, "sum=%v", tt.sum)
		assert.Equal(t, tt.want, got, "sum=%v", tt.sum)
	}
}

func TestCategorize_OutOfRange(t *testing.T) {
	for _, sum := range []float64{-0.001, 5.0001, math.NaN(), math.Inf(1)} {
		_, err := Categorize(sum)
		assert.ErrorIs(t, err, gamemath.ErrInvalidState, "sum=%v", sum)
	}
}

func TestFluctuation_Bounded(t *testing.T) {
	for i := -10000; i <= 10000; i++ {
		sum := Fluctuation(float64(i))
		require.GreaterOrEqual(t, sum, 0.0, "index %d", i)
		require.LessOrEqual(t, sum, 5.0, "index %d", i)

		_, err := Categorize(sum)
		require.NoError(t, err, "index %d", i)
	}
}

func TestFluctuation_KnownValues(t *testing.T) {
	assert.Equal(t, 0.0, Fluctuation(0))

	want := 1.5*math.Pow(math.Sin(1), 2) + math.Pow(math.Sin(0.42), 4) + 2.5*math.Pow(math.Sin(0.13), 8)
	assert.InDelta(t, want, Fluctuation(1), 1e-12)
}

func TestState_TerrainIsDeterministic(t *testing.T) {
	a := NewState(0)
	b := NewState(0)

	for i := -500; i <= 500; i++ {
		first, err := a.Terrain(i)
		require.NoError(t, err)
		again, err := a.Terrain(i)
		require.NoError(t, err)
		fresh, err := b.Terrain(i)
		require.NoError(t, err)

		assert.Equal(t, first, again, "memoised lookup for %d", i)
		assert.Equal(t, first, fresh, "fresh generator for %d", i)
	}
	assert.Equal(t, 1001, a.Cached())
}

func TestState_SeedZeroUsesRawIndex(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, 0, s.Offset())

	got, err := s.Terrain(0)
	require.NoError(t, err)
	assert.Equal(t, Countryside, got)

	got, err = s.Terrain(1)
	require.NoError(t, err)
	assert.Equal(t, Village, got)
}

func TestState_SeedShiftsPhase(t *testing.T) {
	s := NewState(0xdeadbeef)
	assert.Equal(t, uint64(0xdeadbeef), s.Seed())
	assert.Equal(t, seedOffset(0xdeadbeef), s.Offset())
	assert.GreaterOrEqual(t, s.Offset(), 0)
	assert.Less(t, s.Offset(), seedPeriod)

	raw := NewState(0)
	for i := 0; i < 100; i++ {
		got, err := s.Terrain(i)
		require.NoError(t, err)
		want, err := raw.Terrain(i + s.Offset())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTerrain_Strings(t *testing.T) {
	assert.Equal(t, "village", Village.String())
	assert.Equal(t, "tiles/city_metropolis", CityMetropolis.AssetKey())
	assert.Equal(t, "Terrain(9)", Terrain(9).String())
	assert.Less(t, Countryside.Density(), Village.Density())
	assert.Less(t, CityMajor.Density(), CityMetropolis.Density())
}
