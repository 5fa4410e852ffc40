package worldgen

import (
	"fmt"

	"github.com/automoto/stork/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObstacleKind is the size class of a building.
type ObstacleKind int

const (
	Small ObstacleKind = iota
	Medium
	Large
)

var footprints = [...]dmath.Vec2{
	Small:  {X: 156, Y: 62},
	Medium: {X: 120, Y: 144},
	Large:  {X: 152, Y: 310},
}

func (k ObstacleKind) String() string {
	switch k {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return fmt.Sprintf("ObstacleKind(%d)", int(k))
}

// Footprint returns the collision size in pixels.
func (k ObstacleKind) Footprint() dmath.Vec2 {
	return footprints[k]
}

// AssetKey names the building sprite for the kind.
func (k ObstacleKind) AssetKey() string {
	return fmt.Sprintf("collidables/house_%d", int(k)+1)
}

// Placement is one obstacle relative to its tile's origin.
type Placement struct {
	Kind   ObstacleKind
	Offset dmath.Vec2
}

// WorldPosition returns the obstacle centre in world pixels.
func (p Placement) WorldPosition(index int) dmath.Vec2 {
	return dmath.Vec2{X: TileOriginX(index) + p.Offset.X, Y: p.Offset.Y}
}

// Box returns the obstacle's world-space collision box.
func (p Placement) Box(index int) gamemath.Box {
	return gamemath.Box{Center: p.WorldPosition(index), Size: p.Kind.Footprint()}
}

var (
	villageSlots     = []float64{-300, -150, 200}
	cityMinorSlots   = []float64{-300, -150, 200, 350}
	cityMajorSlots   = []float64{-400, -150, 0, 200, 350}
	metropolisSlots  = []float64{-350, -150, 0, 200, 400}
	cityMinorPairing = [12][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 3},
		{3, 0}, {3, 1}, {3, 2},
	}
)

// PlaceObstacles returns the obstacles of a tile. It is a pure function of
// terrain and index; negative indices use the non-negative remainder.
func PlaceObstacles(terrain Terrain, index int) ([]Placement, error) {
	switch terrain {
	case Countryside:
		return nil, nil

	case Village:
		x, err := slot(villageSlots, mod(index, 3))
		if err != nil {
			return nil, err
		}
		return []Placement{place(Small, x)}, nil

	case CityMinor:
		combo := mod(index, 12)
		if combo >= len(cityMinorPairing) {
			return nil, fmt.Errorf("city minor pairing %d: %w", combo, gamemath.ErrPreconditionViolation)
		}
		pair := cityMinorPairing[combo]
		smallX, err := slot(cityMinorSlots, pair[0])
		if err != nil {
			return nil, err
		}
		mediumX, err := slot(cityMinorSlots, pair[1])
		if err != nil {
			return nil, err
		}
		return []Placement{place(Small, smallX), place(Medium, mediumX)}, nil

	case CityMajor:
		mediums := mod(index, 3) + 1
		kinds := make([]ObstacleKind, 0, 3)
		for i := 0; i < 3; i++ {
			if i < mediums {
				kinds = append(kinds, Medium)
			} else {
				kinds = append(kinds, Small)
			}
		}
		return drawFromPool(cityMajorSlots, index, kinds)

	case CityMetropolis:
		return drawFromPool(metropolisSlots, index, []ObstacleKind{Large, Medium, Medium, Medium})
	}
	return nil, fmt.Errorf("no layout for terrain %v: %w", terrain, gamemath.ErrPreconditionViolation)
}

// drawFromPool assigns slots by repeatedly removing pool[index % len(pool)].
// The pool shrinks, so this is deterministic but not a uniform shuffle.
func drawFromPool(slots []float64, index int, kinds []ObstacleKind) ([]Placement, error) {
	pool := append([]float64(nil), slots...)
	out := make([]Placement, 0, len(kinds))
	for _, kind := range kinds {
		if len(pool) == 0 {
			return nil, fmt.Errorf("slot pool exhausted placing %v: %w", kind, gamemath.ErrPreconditionViolation)
		}
		i := mod(index, len(pool))
		x, err := slot(pool, i)
		if err != nil {
			return nil, err
		}
		pool = append(pool[:i], pool[i+1:]...)
		out = append(out, place(kind, x))
	}
	return out, nil
}

func place(kind ObstacleKind, x float64) Placement {
	return Placement{
		Kind:   kind,
		Offset: dmath.Vec2{X: x, Y: kind.Footprint().Y / 2},
	}
}

func slot(slots []float64, i int) (float64, error) {
	if i < 0 || i >= len(slots) {
		return 0, fmt.Errorf("slot %d of %d: %w", i, len(slots), gamemath.ErrPreconditionViolation)
	}
	return slots[i], nil
}

func mod(index, n int) int {
	r := index % n
	if r < 0 {
		r += n
	}
	return r
}
