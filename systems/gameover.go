package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stork/components"
	cfg "github.com/automoto/stork/config"
	"github.com/automoto/stork/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateGameOver fades in the crash overlay once the run has ended.
func UpdateGameOver(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok || !session.Over {
		return
	}
	gameOver := GetOrCreateGameOver(e)
	if gameOver.Done {
		return
	}
	if gameOver.Fade == nil {
		gameOver.Fade = gween.New(0, 1, float32(cfg.GameOver.FadeSeconds), ease.OutQuad)
	}

	alpha, finished := gameOver.Fade.Update(float32(session.Delta))
	gameOver.Alpha = float64(alpha)
	gameOver.Done = finished
}

// DrawGameOver renders the crash overlay
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session, ok := GetSession(e)
	if !ok || !session.Over {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float64(overlay.A) * gameOver.Alpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title.Get(), width, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)
	drawCentered(screen, crashMessage(session), fonts.Bold.Get(), width, cfg.GameOver.MessageY, cfg.GameOver.TextColor)
}

func crashMessage(session *components.SessionData) string {
	switch {
	case session.Crash != nil:
		return fmt.Sprintf("Hit a %s house on tile %d after %.1fs",
			session.Crash.Kind, session.Crash.TileIndex, session.Elapsed)
	case session.Err != nil:
		return session.Err.Error()
	}
	return ""
}

func drawCentered(screen *ebiten.Image, msg string, face font.Face, width, y float64, clr color.Color) {
	if msg == "" {
		return
	}
	bounds := text.BoundString(face, msg)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, msg, face, x, int(y), clr)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
