package systems

import (
	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.ShowHitboxes,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
