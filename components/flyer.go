package components

import (
	"github.com/automoto/stork/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FlyerData holds the stork's kinematic state and the controls applied on the
// last step.
type FlyerData struct {
	State    gamemath.FlyerState
	Controls gamemath.Controls
}

var Flyer = donburi.NewComponentType[FlyerData]()
