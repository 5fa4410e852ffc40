package worldgen

import (
	"fmt"
	"math"

	"github.com/automoto/stork/shared/gamemath"
)

// Terrain is the settlement density of a tile.
type Terrain int

const (
	Countryside Terrain = iota
	Village
	CityMinor
	CityMajor
	CityMetropolis
)

var terrainNames = [...]string{
	Countryside:    "countryside",
	Village:        "village",
	CityMinor:      "city_minor",
	CityMajor:      "city_major",
	CityMetropolis: "city_metropolis",
}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// Density is the upper bound of the fluctuation bucket the terrain came from.
func (t Terrain) Density() float64 {
	return float64(t) + 1
}

// AssetKey names the ground sprite for the terrain.
func (t Terrain) AssetKey() string {
	return "tiles/" + t.String()
}

// Fluctuation sums the micro, minor and major sinusoidal terms for n.
// The result lies in [0, 5].
func Fluctuation(n float64) float64 {
	micro := 1.5 * math.Pow(math.Sin(n), 2)
	minor := 1.0 * math.Pow(math.Sin(n*0.42), 4)
	major := 2.5 * math.Pow(math.Sin(n*0.13), 8)
	return micro + minor + major
}

// Categorize buckets a fluctuation sum into [0,1], (1,2], (2,3], (3,4], (4,5].
func Categorize(sum float64) (Terrain, error) {
	switch {
	case sum >= 0 && sum <= 1:
		return Countryside, nil
	case sum > 1 && sum <= 2:
		return Village, nil
	case sum > 2 && sum <= 3:
		return CityMinor, nil
	case sum > 3 && sum <= 4:
		return CityMajor, nil
	case sum > 4 && sum <= 5:
		return CityMetropolis, nil
	}
	return Countryside, fmt.Errorf("fluctuation sum %v outside [0,5]: %w", sum, gamemath.ErrInvalidState)
}
