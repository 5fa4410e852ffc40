package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func box(x, y, w, h float64) Box {
	return Box{Center: dmath.Vec2{X: x, Y: y}, Size: dmath.Vec2{X: w, Y: h}}
}

func TestBox_MinMax(t *testing.T) {
	b := box(100, 100, 64, 32)
	assert.Equal(t, dmath.Vec2{X: 68, Y: 84}, b.Min())
	assert.Equal(t, dmath.Vec2{X: 132, Y: 116}, b.Max())
}

func TestBox_Overlaps(t *testing.T) {
	flyer := box(100, 100, 64, 32)

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"small house overlapping", box(110, 110, 156, 62), true},
		{"contained", box(100, 100, 10, 10), true},
		{"left of", box(0, 100, 50, 50), false},
		{"above", box(100, 200, 64, 32), false},
		{"touching edge", box(164, 100, 64, 32), false},
		{"overlaps x only", box(100, 300, 300, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flyer.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(flyer))
		})
	}
}

func TestFirstOverlap(t *testing.T) {
	flyer := box(100, 100, 64, 32)

	i, ok := FirstOverlap(flyer, []Box{box(0, 0, 10, 10), box(110, 110, 156, 62), box(100, 100, 5, 5)})
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = FirstOverlap(flyer, nil)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}
