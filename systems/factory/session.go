package factory

import (
	"github.com/automoto/stork/archetypes"
	"github.com/automoto/stork/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession starts a run stepping delta seconds per tick.
func CreateSession(ecs *ecs.ECS, delta float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{Delta: delta})
	return session
}
