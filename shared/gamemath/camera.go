package gamemath

// CameraParams configures the edge-easing follow policy. Fractions are of the view width.
type CameraParams struct {
	LeftEdge     float64 // start chasing when the flyer is left of this
	RightEdge    float64 // start chasing when the flyer is right of this
	TargetOffset float64 // distance from the flyer to the chase target
	RampWidth    float64 // band over which the chase ratio grows from 0 to 1
}

// DefaultCameraParams returns the 20%/80% dead zone policy.
func DefaultCameraParams() CameraParams {
	return CameraParams{
		LeftEdge:     0.2,
		RightEdge:    0.8,
		TargetOffset: 0.3,
		RampWidth:    0.1,
	}
}

// ViewBounds returns the horizontal extent of a camera centred on cameraX.
func ViewBounds(cameraX, viewportWidth, zoom float64) (left, right float64) {
	half := 0.5 * viewportWidth * zoom
	return cameraX - half, cameraX + half
}

// FollowCamera returns the camera x after one tick.
// Inside the dead zone the camera does not move. The ratio is not clamped,
// so a flyer far past the edge can make the camera overshoot in a single tick.
func FollowCamera(cameraX, flyerX, left, right, dt float64, p CameraParams) float64 {
	width := right - left
	if width <= 0 {
		return cameraX
	}
	relative := (flyerX - left) / width

	switch {
	case relative < p.LeftEdge:
		target := flyerX + p.TargetOffset*width
		ratio := (p.LeftEdge - relative) / p.RampWidth
		return Lerp(cameraX, target, ratio*dt)
	case relative > p.RightEdge:
		target := flyerX - p.TargetOffset*width
		ratio := (relative - p.RightEdge) / p.RampWidth
		return Lerp(cameraX, target, ratio*dt)
	}
	return cameraX
}

// Lerp interpolates linearly without clamping t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
