package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData drives the crash overlay fade-in
type GameOverData struct {
	Fade  *gween.Tween
	Alpha float64
	Done  bool
}

// GameOver is the component type for the crash overlay
var GameOver = donburi.NewComponentType[GameOverData]()

// SettingsData holds runtime toggles
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
