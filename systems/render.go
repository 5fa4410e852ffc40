package systems

import (
	"github.com/automoto/stork/assets"
	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/shared/gamemath"
	"github.com/automoto/stork/shared/worldgen"
	"github.com/automoto/stork/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	flyerImage *ebiten.Image
)

// view maps world pixels (y up) to screen pixels (y down) for one frame.
type view struct {
	camera        dmath.Vec2
	zoom          float64
	width, height float64
}

func newView(e *ecs.ECS, width, height int) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return view{
		camera: camera.Position,
		zoom:   zoom,
		width:  float64(width),
		height: float64(height),
	}, true
}

func (v view) toScreen(p dmath.Vec2) (x, y float64) {
	x = (p.X-v.camera.X)/v.zoom + v.width/2
	y = v.height/2 - (p.Y-v.camera.Y)/v.zoom
	return x, y
}

// rect returns box's screen rectangle as top-left corner and size.
func (v view) rect(box gamemath.Box) (x, y, w, h float32) {
	lo, hi := box.Min(), box.Max()
	sx, sy := v.toScreen(dmath.Vec2{X: lo.X, Y: hi.Y})
	return float32(sx), float32(sy), float32(box.Size.X / v.zoom), float32(box.Size.Y / v.zoom)
}

// visible culls boxes horizontally outside the screen.
func (v view) visible(box gamemath.Box) bool {
	half := v.width / 2 * v.zoom
	return box.Max().X >= v.camera.X-half && box.Min().X <= v.camera.X+half
}

// DrawWorld renders tiles, then obstacles, then the flyer.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.SkyColor)

	v, ok := newView(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		tile := components.Tile.Get(entry)
		box := tileBox(tile.Index)
		if !v.visible(box) {
			return
		}
		x, y, w, h := v.rect(box)
		vector.FillRect(screen, x, y, w, h, assets.Color(tile.Terrain.AssetKey()), false)
	})

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		box := *components.Bounds.Get(entry)
		if !v.visible(box) {
			return
		}
		obstacle := components.Obstacle.Get(entry)
		x, y, w, h := v.rect(box)
		vector.FillRect(screen, x, y, w, h, assets.Color(obstacle.Kind.AssetKey()), false)
	})

	tags.Flyer.Each(e.World, func(entry *donburi.Entry) {
		drawFlyer(screen, v, entry)
	})
}

func tileBox(index int) gamemath.Box {
	return gamemath.Box{
		Center: dmath.Vec2{X: worldgen.TileOriginX(index), Y: cfg.UI.TileHeight / 2},
		Size:   dmath.Vec2{X: worldgen.TileWidth, Y: cfg.UI.TileHeight},
	}
}

func drawFlyer(screen *ebiten.Image, v view, entry *donburi.Entry) {
	flyer := components.Flyer.Get(entry)
	box := components.Bounds.Get(entry)

	if flyerImage == nil {
		w, h := float32(box.Size.X), float32(box.Size.Y)
		flyerImage = ebiten.NewImage(int(box.Size.X), int(box.Size.Y))
		flyerImage.Fill(assets.Color(assets.FlyerKey))
		vector.FillRect(flyerImage, w*0.8, h*0.35, w*0.2, h*0.3, assets.Color(assets.BeakKey), false)
	}

	w, h := flyerImage.Bounds().Dx(), flyerImage.Bounds().Dy()
	x, y := v.toScreen(box.Center)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// Screen y points down, so the climb angle is negated.
	drawOp.GeoM.Rotate(-gamemath.Direction(flyer.State.Heading))
	drawOp.GeoM.Scale(1/v.zoom, 1/v.zoom)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(flyerImage, drawOp)
}
