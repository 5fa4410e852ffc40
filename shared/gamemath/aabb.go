package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Box is an axis-aligned box described by its centre and full size.
type Box struct {
	Center dmath.Vec2
	Size   dmath.Vec2
}

// Min returns the lower-left corner.
func (b Box) Min() dmath.Vec2 {
	return dmath.Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b Box) Max() dmath.Vec2 {
	return dmath.Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Overlaps reports whether the boxes overlap on both axes. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X &&
		bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// FirstOverlap returns the index of the first box in others that overlaps b.
func FirstOverlap(b Box, others []Box) (int, bool) {
	for i, o := range others {
		if b.Overlaps(o) {
			return i, true
		}
	}
	return -1, false
}
