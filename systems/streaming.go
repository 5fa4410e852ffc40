package systems

import (
	"fmt"

	"github.com/automoto/stork/components"
	"github.com/automoto/stork/metrics"
	"github.com/automoto/stork/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateStreaming creates the world streaming system. It keeps the tiles
// around the camera alive and moves the collision space along with them.
func NewUpdateStreaming(log zerolog.Logger, counters *metrics.Counters) ecs.System {
	return func(e *ecs.ECS) {
		worldEntry, ok := components.World.First(e.World)
		if !ok {
			return
		}
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		session, ok := GetSession(e)
		if !ok {
			return
		}

		streamer := components.World.Get(worldEntry).Streamer
		cameraX := components.Camera.Get(cameraEntry).Position.X

		// Rebase first so obstacles spawned below land inside the space.
		left, _ := streamer.Window(cameraX)
		rebaseSpace(e, left)

		diff, err := streamer.Update(cameraX)
		if err != nil {
			session.Fail(fmt.Errorf("streaming at camera x=%.1f: %w", cameraX, err))
			return
		}
		if !diff.Changed() {
			return
		}

		counters.Streamed(len(diff.Spawned), len(diff.Despawned), diff.ObstaclesSpawned)
		log.Debug().
			Int("left", diff.Left).
			Int("right", diff.Right).
			Ints("spawned", diff.Spawned).
			Ints("despawned", diff.Despawned).
			Int("obstacles", diff.ObstaclesSpawned).
			Int("live", streamer.Len()).
			Int("memoised", streamer.Generator().Cached()).
			Msg("streamed tiles")
	}
}

func rebaseSpace(e *ecs.ECS, left int) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Origin = factory.SpaceOrigin(left, space.Origin.Y)
}
