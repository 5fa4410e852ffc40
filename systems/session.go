package systems

import (
	"github.com/automoto/stork/components"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the run's Session component.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// WithSessionCheck wraps a system to skip execution once the run has ended.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session, ok := GetSession(e); !ok || session.Over {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when gameplay is stopped.
// This is an alias for WithSessionCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithSessionCheck(system)
}

// UpdateClock advances the run's elapsed time by one tick.
func UpdateClock(ecs *ecs.ECS) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	session.Elapsed += session.Delta
}
