package systems

import (
	"github.com/automoto/stork/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object with its world Bounds relative to
// the current space origin.
func UpdateObjects(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		space.Place(obj.Object, *components.Bounds.Get(e))
	}
}
