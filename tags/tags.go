package tags

import "github.com/yohamta/donburi"

var (
	Flyer    = donburi.NewTag().SetName("Flyer")
	Tile     = donburi.NewTag().SetName("Tile")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for collision
const (
	ResolvFlyer    = "flyer"
	ResolvObstacle = "obstacle"
)
