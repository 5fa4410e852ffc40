package systems

import (
	"fmt"

	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/fonts"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the flight readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	flyerEntry, ok := tags.Flyer.First(e.World)
	if !ok {
		return
	}
	flyer := components.Flyer.Get(flyerEntry)

	var seed uint64
	if worldEntry, ok := components.World.First(e.World); ok {
		seed = components.World.Get(worldEntry).Streamer.Generator().Seed()
	}

	face := fonts.Regular.Get()
	for i, line := range hudLines(flyer.State, cfg.Flyer.StartX, seed) {
		y := cfg.UI.HUDMargin + float64(i+1)*cfg.UI.HUDLineHeight
		text.Draw(screen, line, face, int(cfg.UI.HUDMargin), int(y), cfg.UI.HUDTextColor)
	}
}

func hudLines(s gamemath.FlyerState, startX float64, seed uint64) []string {
	return []string{
		fmt.Sprintf("speed    %.2f m/s", s.Speed),
		fmt.Sprintf("heading  %.1f deg", s.Heading),
		fmt.Sprintf("altitude %.1f m", s.Position.Y),
		fmt.Sprintf("distance %.0f m", s.Position.X-startX),
		fmt.Sprintf("seed     %d", seed),
	}
}
