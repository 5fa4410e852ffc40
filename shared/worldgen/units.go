package worldgen

const (
	// PixelsPerMeter maps simulation meters to world pixels.
	PixelsPerMeter = 100.0
	// TileSize is the width of one tile in meters.
	TileSize = 10.0
	// TileWidth is the width of one tile in pixels.
	TileWidth = TileSize * PixelsPerMeter
)

// TileOriginX returns the pixel x of the centre of a tile.
// Generation, placement and eviction all go through this mapping.
func TileOriginX(index int) float64 {
	return float64(index) * TileWidth
}
