package factory

import (
	"github.com/automoto/stork/archetypes"
	"github.com/automoto/stork/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, position dmath.Vec2, zoom float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: position,
		Zoom:     zoom,
	})
	return camera
}
