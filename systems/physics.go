package systems

import (
	"fmt"

	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/automoto/stork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlight integrates the flyer one tick with the held controls and moves
// its collision box. An integrator error ends the session.
func UpdateFlight(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	controls := Controls(getOrCreateInput(ecs))
	params := cfg.Flight.Params()

	tags.Flyer.Each(ecs.World, func(e *donburi.Entry) {
		flyer := components.Flyer.Get(e)

		next, err := gamemath.StepFlight(flyer.State, controls, session.Delta, params)
		if err != nil {
			session.Fail(fmt.Errorf("flight at t=%.2fs: %w", session.Elapsed, err))
			return
		}
		flyer.State = next
		flyer.Controls = controls

		components.Bounds.Get(e).Center = gamemath.PixelPosition(next.Position, worldgen.PixelsPerMeter)
	})
}
