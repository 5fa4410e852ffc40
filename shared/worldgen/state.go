package worldgen

// seedPeriod bounds the phase offset derived from the seed.
const seedPeriod = 1 << 16

// State is the process-wide generator state: the seed and the terrain memo.
// It is not safe for concurrent use.
type State struct {
	seed   uint64
	offset int
	memo   map[int]Terrain
}

// NewState returns a generator for seed. Seed 0 evaluates the fluctuation
// terms at the raw tile index; any other seed shifts them by a fixed phase.
func NewState(seed uint64) *State {
	return &State{
		seed:   seed,
		offset: seedOffset(seed),
		memo:   make(map[int]Terrain),
	}
}

func (s *State) Seed() uint64 {
	return s.seed
}

// Offset is the tile phase derived from the seed.
func (s *State) Offset() int {
	return s.offset
}

// Cached returns how many tile indices have been memoised.
func (s *State) Cached() int {
	return len(s.memo)
}

// Terrain returns the terrain of a tile. Results are memoised, so a tile that
// scrolls out and comes back always gets the same terrain.
func (s *State) Terrain(index int) (Terrain, error) {
	if t, ok := s.memo[index]; ok {
		return t, nil
	}
	t, err := Categorize(Fluctuation(float64(index + s.offset)))
	if err != nil {
		return t, err
	}
	s.memo[index] = t
	return t, nil
}

func seedOffset(seed uint64) int {
	return int(hash32(uint32(seed)^uint32(seed>>32)) % seedPeriod)
}

// hash32 is a murmur-style finaliser. hash32(0) is 0.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
