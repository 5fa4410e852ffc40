package components

import (
	"github.com/automoto/stork/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Bounds is the authoritative world-space box (pixels, y up). The resolv
// object is derived from it every frame and only used as a broad phase.
var Bounds = donburi.NewComponentType[gamemath.Box]()
