package systems

import (
	"github.com/automoto/stork/components"
	"github.com/automoto/stork/metrics"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/tags"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCollision creates the crash monitor. The resolv space narrows the
// candidates, then boxes are compared exactly. The first hit ends the session;
// later ticks do nothing.
func NewUpdateCollision(log zerolog.Logger, counters *metrics.Counters) ecs.System {
	return func(e *ecs.ECS) {
		session, ok := GetSession(e)
		if !ok || session.Over {
			return
		}
		flyerEntry, ok := tags.Flyer.First(e.World)
		if !ok {
			return
		}

		spaceEntry, ok := components.Space.First(e.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)
		flyerBox := *components.Bounds.Get(flyerEntry)

		var (
			entries []*donburi.Entry
			boxes   []gamemath.Box
		)
		for _, o := range space.Nearby(flyerBox, tags.ResolvObstacle) {
			entry, ok := o.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			entries = append(entries, entry)
			boxes = append(boxes, *components.Bounds.Get(entry))
		}

		i, hit := gamemath.FirstOverlap(flyerBox, boxes)
		if !hit {
			return
		}
		entry := entries[i]

		obstacle := components.Obstacle.Get(entry)
		session.Over = true
		session.Crash = &components.CrashReport{
			Kind:      obstacle.Kind,
			TileIndex: obstacle.TileIndex,
			Position:  flyerBox.Center,
		}

		counters.Crashed(obstacle.Kind.String())
		log.Info().
			Str("kind", obstacle.Kind.String()).
			Int("tile", obstacle.TileIndex).
			Float64("x", flyerBox.Center.X).
			Float64("y", flyerBox.Center.Y).
			Float64("elapsed", session.Elapsed).
			Msg("crashed")
	}
}
