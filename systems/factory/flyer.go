package factory

import (
	"github.com/automoto/stork/archetypes"
	"github.com/automoto/stork/components"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/automoto/stork/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateFlyer spawns the stork with the given kinematic state and a
// collision box of size pixels centred on its position.
func CreateFlyer(ecs *ecs.ECS, state gamemath.FlyerState, size dmath.Vec2) *donburi.Entry {
	flyer := archetypes.Flyer.Spawn(ecs)

	components.Flyer.SetValue(flyer, components.FlyerData{State: state})
	components.Bounds.SetValue(flyer, gamemath.Box{
		Center: gamemath.PixelPosition(state.Position, worldgen.PixelsPerMeter),
		Size:   size,
	})

	obj := resolv.NewObject(0, 0, size.X, size.Y, tags.ResolvFlyer)
	components.Object.SetValue(flyer, components.ObjectData{Object: obj})
	addToSpace(ecs, obj, flyer)

	return flyer
}
