package components

import (
	"github.com/automoto/stork/shared/worldgen"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CrashReport describes the first obstacle hit.
type CrashReport struct {
	Kind      worldgen.ObstacleKind
	TileIndex int
	Position  dmath.Vec2 // flyer pixel position at impact
}

// SessionData tracks the run: the fixed frame step, elapsed time and how it
// ended. A run ends on the first crash or on the first simulation error.
type SessionData struct {
	Delta   float64 // seconds per tick
	Elapsed float64
	Over    bool
	Crash   *CrashReport
	Err     error
}

// Fail ends the session with err unless it has already ended.
func (s *SessionData) Fail(err error) {
	if s.Over {
		return
	}
	s.Over = true
	s.Err = err
}

var Session = donburi.NewComponentType[SessionData]()
