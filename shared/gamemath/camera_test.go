package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewBounds(t *testing.T) {
	left, right := ViewBounds(500, 1280, 1)
	assert.Equal(t, -140.0, left)
	assert.Equal(t, 1140.0, right)

	left, right = ViewBounds(0, 1000, 2)
	assert.Equal(t, -1000.0, left)
	assert.Equal(t, 1000.0, right)
}

func TestFollowCamera_DeadZoneDoesNotMove(t *testing.T) {
	p := DefaultCameraParams()
	left, right := ViewBounds(0, 1000, 1)

	for _, dt := range []float64{0, 0.016, 1, 10} {
		assert.Equal(t, 0.0, FollowCamera(0, 0, left, right, dt, p), "dt=%v", dt)
	}
}

func TestFollowCamera_ExactlyAtEdgeDoesNotMove(t *testing.T) {
	p := DefaultCameraParams()
	left, right := ViewBounds(0, 1000, 1)

	assert.Equal(t, 0.0, FollowCamera(0, left+200, left, right, 1, p))
	assert.Equal(t, 0.0, FollowCamera(0, left+800, left, right, 1, p))
}

func TestFollowCamera_RightEdgeChases(t *testing.T) {
	p := DefaultCameraParams()
	left, right := ViewBounds(0, 1000, 1)
	flyerX := left + 850 // relative 0.85, ratio 0.5

	got := FollowCamera(0, flyerX, left, right, 0.1, p)

	target := flyerX - 0.3*1000
	assert.InDelta(t, (target-0)*0.5*0.1, got, 1e-9)
	assert.Greater(t, got, 0.0)
}

func TestFollowCamera_LeftEdgeChases(t *testing.T) {
	p := DefaultCameraParams()
	left, right := ViewBounds(0, 1000, 1)
	flyerX := left + 150 // relative 0.15, ratio 0.5

	got := FollowCamera(0, flyerX, left, right, 0.1, p)

	target := flyerX + 0.3*1000
	assert.InDelta(t, target*0.5*0.1, got, 1e-9)
	assert.Less(t, got, 0.0)
}

func TestFollowCamera_RatioIsNotClamped(t *testing.T) {
	p := DefaultCameraParams()
	left, right := ViewBounds(0, 1000, 1)
	flyerX := right + 2000 // far past the right edge

	got := FollowCamera(0, flyerX, left, right, 1, p)
	target := flyerX - 300
	assert.Greater(t, got, target, "an unclamped ratio overshoots the target")
}

func TestFollowCamera_DegenerateBounds(t *testing.T) {
	assert.Equal(t, 42.0, FollowCamera(42, 0, 10, 10, 1, DefaultCameraParams()))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 20.0, Lerp(0, 10, 2))
}
