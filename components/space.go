package components

import (
	"github.com/automoto/stork/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpaceData is a resolv space anchored at a floating world origin so that an
// unbounded world fits the fixed-size cell grid.
type SpaceData struct {
	*resolv.Space
	Origin dmath.Vec2
}

// Place moves obj so it covers box, expressed relative to the space origin.
func (s *SpaceData) Place(obj *resolv.Object, box gamemath.Box) {
	lo := box.Min()
	obj.X = lo.X - s.Origin.X
	obj.Y = lo.Y - s.Origin.Y
	obj.W = box.Size.X
	obj.H = box.Size.Y
	if obj.Space != nil {
		obj.Update()
	}
}

var Space = donburi.NewComponentType[SpaceData]()

// Nearby returns the objects tagged tag that share a cell with box grown by
// one pixel on every side. resolv maps an object's far edge through X+W-1, so
// an exact query can miss a neighbour that overlaps by less than a pixel
// across a cell boundary. Callers must still compare boxes exactly.
func (s *SpaceData) Nearby(box gamemath.Box, tag string) []*resolv.Object {
	lo, hi := box.Min(), box.Max()
	cx, cy := s.WorldToSpace(lo.X-s.Origin.X-1, lo.Y-s.Origin.Y-1)
	ex, ey := s.WorldToSpace(hi.X-s.Origin.X+1, hi.Y-s.Origin.Y+1)

	var found []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := s.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if seen[o] || !o.HasTags(tag) {
					continue
				}
				seen[o] = true
				found = append(found, o)
			}
		}
	}
	return found
}
