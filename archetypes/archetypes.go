package archetypes

import (
	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Flyer = newArchetype(
		tags.Flyer,
		components.Flyer,
		components.Object,
		components.Bounds,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Bounds,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	World = newArchetype(
		components.World,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
