package components

import (
	"github.com/automoto/stork/shared/worldgen"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Index   int
	Terrain worldgen.Terrain
}

var Tile = donburi.NewComponentType[TileData]()

type ObstacleData struct {
	Kind      worldgen.ObstacleKind
	TileIndex int
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// WorldData owns the streaming state for the procedural world.
type WorldData struct {
	Streamer *worldgen.Streamer[donburi.Entity]
}

var World = donburi.NewComponentType[WorldData]()
