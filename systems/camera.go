package systems

import (
	"github.com/automoto/stork/components"
	"github.com/automoto/stork/config"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera horizontally once the flyer leaves the dead
// zone. The vertical position never changes after spawn.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	flyerEntry, ok := tags.Flyer.First(e.World)
	if !ok {
		return
	}
	session, ok := GetSession(e)
	if !ok {
		return
	}

	flyerX := components.Bounds.Get(flyerEntry).Center.X
	left, right := gamemath.ViewBounds(camera.Position.X, float64(config.C.Width), camera.Zoom)
	camera.Position.X = gamemath.FollowCamera(camera.Position.X, flyerX, left, right, session.Delta, config.Camera.Params())
}
