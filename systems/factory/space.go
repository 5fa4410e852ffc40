package factory

import (
	"math"

	"github.com/automoto/stork/archetypes"
	"github.com/automoto/stork/components"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int, origin dmath.Vec2) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(width, height, cellWidth, cellHeight),
		Origin: origin,
	})
	return space
}

// addToSpace places obj over the entry's Bounds and registers it with the
// collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object, entry *donburi.Entry) {
	obj.Data = entry // Link for O(1) lookup

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Place(obj, *components.Bounds.Get(entry))
	space.Add(obj)
}

// DestroyEntity removes an entity and its collision object. Stale handles are ignored.
func DestroyEntity(ecs *ecs.ECS, entity donburi.Entity) {
	if !ecs.World.Valid(entity) {
		return
	}
	entry := ecs.World.Entry(entity)

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(ecs.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}

	ecs.World.Remove(entity)
}

// SpaceOrigin returns the origin that lets the space cover a streaming window
// whose leftmost tile is left, keeping one spare tile on the trailing side.
func SpaceOrigin(left int, floor float64) dmath.Vec2 {
	return dmath.Vec2{
		X: worldgen.TileOriginX(left-1) - worldgen.TileWidth/2,
		Y: floor,
	}
}

// SpaceWidth returns the pixel width needed to cover any streaming window for
// maxVisibleWidth plus the spare tile.
func SpaceWidth(maxVisibleWidth float64) int {
	return int(math.Ceil(2*maxVisibleWidth + 4*worldgen.TileWidth))
}
