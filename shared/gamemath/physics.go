package gamemath

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// FlightParams holds the tunable constants of the glide model.
type FlightParams struct {
	AirResistance        float64 // fraction of speed lost per second
	Gravity              float64 // m/s^2
	StallSpeed           float64 // m/s
	StallTurnRate        float64 // deg/s at exactly StallSpeed
	MaxAcceleration      float64 // m/s^2 at speed 0
	TopAccelerationSpeed float64 // speed at which boost stops accelerating
	TurnSpeed            float64 // deg/s
	PitchUpCeiling       float64 // |heading| above this snaps to vertical
	PitchDownFloor       float64 // |heading| below this snaps to straight down
}

// DefaultFlightParams returns the tuned values of the prototype.
func DefaultFlightParams() FlightParams {
	return FlightParams{
		AirResistance:        0.1,
		Gravity:              9.81 * 0.2,
		StallSpeed:           1.0,
		StallTurnRate:        20.0,
		MaxAcceleration:      10.0,
		TopAccelerationSpeed: 4.0,
		TurnSpeed:            100.0,
		PitchUpCeiling:       175.0,
		PitchDownFloor:       5.0,
	}
}

// FlyerState is the simulated state of the glider.
// Heading is in degrees: 90 is rightward, 0 is straight down, -90 is leftward.
type FlyerState struct {
	Position dmath.Vec2 // meters
	Speed    float64    // m/s
	Heading  float64
}

// Controls is the set of held flight controls for one tick.
type Controls struct {
	Boost     bool
	PitchUp   bool
	PitchDown bool
}

// StepFlight advances the flyer by dt seconds.
// A zero dt is a no-op tick and a negative dt is rejected.
func StepFlight(s FlyerState, c Controls, dt float64, p FlightParams) (FlyerState, error) {
	if dt < 0 {
		return s, fmt.Errorf("flight step with dt=%v: %w", dt, ErrPreconditionViolation)
	}
	if dt == 0 {
		return s, nil
	}

	speed := s.Speed
	heading := s.Heading

	// Thrust tapers linearly to zero at TopAccelerationSpeed and brakes beyond it.
	if c.Boost {
		acceleration := p.MaxAcceleration * (1 - speed/p.TopAccelerationSpeed)
		speed += acceleration * dt
	}

	if c.PitchUp {
		heading += p.TurnSpeed * Sign(heading) * dt
		if math.Abs(heading) > p.PitchUpCeiling {
			heading = -Sign(heading) * 180
		}
	}
	if c.PitchDown {
		heading -= p.TurnSpeed * Sign(heading) * dt
		if math.Abs(heading) < p.PitchDownFloor {
			// The sign of the zero decides which side the next pitch-up turns to.
			heading = math.Copysign(0, -Sign(heading))
		}
	}

	// Energy conservation: climbing trades speed for height, diving the reverse.
	deltaH := math.Sin(Radians(math.Abs(heading)-90)) * speed * dt
	radicand := speed*speed - 2*deltaH*p.Gravity
	if radicand < 0 || math.IsNaN(radicand) {
		return s, fmt.Errorf("gravity update: speed^2 - 2*dh*g = %v (speed=%v, heading=%v): %w",
			radicand, speed, heading, ErrInvalidState)
	}
	speed = math.Sqrt(radicand)

	speed -= speed * p.AirResistance * dt

	// Stall: nose drops toward vertical, faster the slower we fly.
	if speed < p.StallSpeed {
		side := Sign(heading)
		ratio := speed / p.StallSpeed
		turnRate := p.StallTurnRate / (ratio * ratio)
		elevation := math.Abs(heading) - turnRate*dt
		heading = elevation * side
	}

	dir := Direction(heading)
	next := FlyerState{
		Position: dmath.Vec2{
			X: s.Position.X + math.Cos(dir)*speed*dt,
			Y: s.Position.Y + math.Sin(dir)*speed*dt,
		},
		Speed:   speed,
		Heading: heading,
	}
	if !next.finite() {
		return s, fmt.Errorf("flyer state diverged (speed=%v, heading=%v, position=%v,%v): %w",
			next.Speed, next.Heading, next.Position.X, next.Position.Y, ErrInvalidState)
	}
	return next, nil
}

func (s FlyerState) finite() bool {
	for _, v := range []float64{s.Speed, s.Heading, s.Position.X, s.Position.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Direction converts a heading to a math-convention angle in radians (0 = +x).
func Direction(heading float64) float64 {
	return Radians(heading - 90)
}

// PixelPosition scales a position in meters to pixels.
func PixelPosition(pos dmath.Vec2, pixelsPerMeter float64) dmath.Vec2 {
	return dmath.Vec2{X: pos.X * pixelsPerMeter, Y: pos.Y * pixelsPerMeter}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Sign returns 1 or -1 following the sign bit, so Sign(-0) is -1.
func Sign(v float64) float64 {
	return math.Copysign(1, v)
}
