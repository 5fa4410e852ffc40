package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/fonts"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/automoto/stork/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines every collision object and labels tile boundaries.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			box := gamemath.Box{
				Center: dmath.Vec2{
					X: space.Origin.X + obj.X + obj.W/2,
					Y: space.Origin.Y + obj.Y + obj.H/2,
				},
				Size: dmath.Vec2{X: obj.W, Y: obj.H},
			}
			if !v.visible(box) {
				continue
			}

			c := cfg.UI.DebugSpaceColor
			for tag, tagColor := range cfg.UI.DebugBoxColors {
				if obj.HasTags(tag) {
					c = tagColor
				}
			}
			drawOutline(screen, v, box, c)
		}
	}

	face := fonts.Regular.Get()
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		x, _ := v.toScreen(dmath.Vec2{X: worldgen.TileOriginX(tile.Index) - worldgen.TileWidth/2})
		if x < 0 || x > v.width {
			return
		}
		vector.FillRect(screen, float32(x), 0, 1, float32(v.height), cfg.UI.DebugSpaceColor, false)
		label := fmt.Sprintf("%d %s", tile.Index, tile.Terrain)
		text.Draw(screen, label, face, int(x)+4, int(v.height)-8, cfg.UI.DebugSpaceColor)
	})
}

func drawOutline(screen *ebiten.Image, v view, box gamemath.Box, c color.Color) {
	x, y, w, h := v.rect(box)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
