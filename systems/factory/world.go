package factory

import (
	"github.com/automoto/stork/archetypes"
	"github.com/automoto/stork/components"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/automoto/stork/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld creates the procedural world for seed. Tiles are not spawned
// until the first streaming update.
func CreateWorld(ecs *ecs.ECS, seed uint64, maxVisibleWidth float64, evictRight bool) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)

	streamer := worldgen.NewStreamer[donburi.Entity](
		worldgen.NewState(seed),
		entitySink{ecs: ecs},
		maxVisibleWidth,
	)
	streamer.SetEvictRight(evictRight)

	components.World.SetValue(world, components.WorldData{Streamer: streamer})
	return world
}

func CreateTile(ecs *ecs.ECS, index int, terrain worldgen.Terrain) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	components.Tile.SetValue(tile, components.TileData{
		Index:   index,
		Terrain: terrain,
	})
	return tile
}

func CreateObstacle(ecs *ecs.ECS, index int, p worldgen.Placement) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	box := p.Box(index)
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Kind:      p.Kind,
		TileIndex: index,
	})
	components.Bounds.SetValue(obstacle, box)

	obj := resolv.NewObject(0, 0, box.Size.X, box.Size.Y, tags.ResolvObstacle)
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj, obstacle)

	return obstacle
}

// entitySink materialises streamed tiles as entities.
type entitySink struct {
	ecs *ecs.ECS
}

func (s entitySink) SpawnTile(index int, terrain worldgen.Terrain) donburi.Entity {
	return CreateTile(s.ecs, index, terrain).Entity()
}

func (s entitySink) SpawnObstacle(index int, p worldgen.Placement) donburi.Entity {
	return CreateObstacle(s.ecs, index, p).Entity()
}

func (s entitySink) Despawn(h donburi.Entity) {
	DestroyEntity(s.ecs, h)
}
