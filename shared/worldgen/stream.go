package worldgen

import (
	"math"
	"sort"
)

// Sink instantiates and destroys the presentation side of tiles and obstacles.
// H is the opaque handle returned at creation and passed back for destruction.
type Sink[H any] interface {
	SpawnTile(index int, terrain Terrain) H
	SpawnObstacle(index int, p Placement) H
	Despawn(h H)
}

// TileRecord is a live tile and the obstacles it owns.
type TileRecord[H any] struct {
	Index      int
	Terrain    Terrain
	Placements []Placement
	Handle     H
	Obstacles  []H
}

// Diff describes what one streaming pass changed.
type Diff struct {
	Left, Right      int
	Spawned          []int
	Despawned        []int
	ObstaclesSpawned int
}

// Changed reports whether the pass spawned or despawned anything.
func (d Diff) Changed() bool {
	return len(d.Spawned) > 0 || len(d.Despawned) > 0
}

// Streamer keeps the tiles around the camera instantiated.
type Streamer[H any] struct {
	gen             *State
	sink            Sink[H]
	maxVisibleWidth float64
	evictRight      bool
	tiles           map[int]*TileRecord[H]
}

// NewStreamer returns a streamer that keeps every tile within maxVisibleWidth
// pixels of the camera alive.
func NewStreamer[H any](gen *State, sink Sink[H], maxVisibleWidth float64) *Streamer[H] {
	return &Streamer[H]{
		gen:             gen,
		sink:            sink,
		maxVisibleWidth: maxVisibleWidth,
		tiles:           make(map[int]*TileRecord[H]),
	}
}

// SetEvictRight makes Update also destroy tiles right of the window.
// Off by default: the world scrolls rightward and only the trailing edge is reclaimed.
func (s *Streamer[H]) SetEvictRight(evict bool) {
	s.evictRight = evict
}

// Generator returns the terrain generator the streamer reads from.
func (s *Streamer[H]) Generator() *State {
	return s.gen
}

// Window returns the inclusive tile range that must exist for cameraX.
func (s *Streamer[H]) Window(cameraX float64) (left, right int) {
	left = int(math.Floor((cameraX - s.maxVisibleWidth) / TileWidth))
	right = int(math.Ceil((cameraX + s.maxVisibleWidth) / TileWidth))
	return left, right
}

// Update despawns tiles that fell behind the window and spawns the missing ones.
// Tiles already present are skipped, so an unmoved camera is a no-op.
func (s *Streamer[H]) Update(cameraX float64) (Diff, error) {
	left, right := s.Window(cameraX)
	diff := Diff{Left: left, Right: right}

	for index, rec := range s.tiles {
		if index < left || (s.evictRight && index > right) {
			s.destroy(rec)
			delete(s.tiles, index)
			diff.Despawned = append(diff.Despawned, index)
		}
	}
	sort.Ints(diff.Despawned)

	for index := left; index <= right; index++ {
		if _, ok := s.tiles[index]; ok {
			continue
		}
		terrain, err := s.gen.Terrain(index)
		if err != nil {
			return diff, err
		}
		placements, err := PlaceObstacles(terrain, index)
		if err != nil {
			return diff, err
		}

		rec := &TileRecord[H]{
			Index:      index,
			Terrain:    terrain,
			Placements: placements,
			Handle:     s.sink.SpawnTile(index, terrain),
		}
		for _, p := range placements {
			rec.Obstacles = append(rec.Obstacles, s.sink.SpawnObstacle(index, p))
		}
		s.tiles[index] = rec
		diff.Spawned = append(diff.Spawned, index)
		diff.ObstaclesSpawned += len(placements)
	}
	return diff, nil
}

// destroy removes a tile's obstacles before the tile itself.
func (s *Streamer[H]) destroy(rec *TileRecord[H]) {
	for _, h := range rec.Obstacles {
		s.sink.Despawn(h)
	}
	rec.Obstacles = nil
	s.sink.Despawn(rec.Handle)
}

// Tile returns the live record for index.
func (s *Streamer[H]) Tile(index int) (*TileRecord[H], bool) {
	rec, ok := s.tiles[index]
	return rec, ok
}

// Tiles returns the live tile indices in ascending order.
func (s *Streamer[H]) Tiles() []int {
	out := make([]int, 0, len(s.tiles))
	for index := range s.tiles {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of live tiles.
func (s *Streamer[H]) Len() int {
	return len(s.tiles)
}
