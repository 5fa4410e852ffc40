package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world pixels, y up
	Zoom     float64   // world pixels per screen pixel
}

var Camera = donburi.NewComponentType[CameraData]()
