// internal/render/renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"jungle-defense/internal/app"
	"jungle-defense/internal/component"
	"jungle-defense/internal/config"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/types"
	"jungle-defense/internal/ui"
	"jungle-defense/pkg/grid"
)

// Sprites yields loaded animation frames; nil means "draw a placeholder".
type Sprites interface {
	Frame(res string, i int) *ebiten.Image
}

// Renderer draws a session. Sprites and background art are optional.
type Renderer struct {
	sprites    Sprites
	background *ebiten.Image
	actionBar  *ebiten.Image
	face       font.Face
	waves      *ui.WaveIndicator
}

func NewRenderer(sprites Sprites, background, actionBar *ebiten.Image) *Renderer {
	return &Renderer{
		sprites:    sprites,
		background: background,
		actionBar:  actionBar,
		face:       basicfont.Face7x13,
		waves:      ui.NewWaveIndicator(config.ScreenWidth-60, config.HUDTextY),
	}
}

// Face is the HUD font, shared with the toolbar.
func (r *Renderer) Face() font.Face { return r.face }

// Icon returns frame 0 of a sprite directory, if loaded.
func (r *Renderer) Icon(res string) *ebiten.Image {
	if r.sprites == nil {
		return nil
	}
	return r.sprites.Frame(res, 0)
}

// DrawField paints the lanes and the action bar background.
func (r *Renderer) DrawField(screen *ebiten.Image, rows int) {
	screen.Fill(config.BackgroundColor)
	if r.background != nil {
		screen.DrawImage(r.background, nil)
	} else {
		for row := 0; row < rows; row++ {
			c := config.LaneColorA
			if row%2 == 1 {
				c = config.LaneColorB
			}
			vector.DrawFilledRect(screen, 0, float32(grid.GridToFree(row)), config.ScreenWidth, grid.Space, c, false)
		}
	}
	if r.actionBar != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, config.ToolbarY)
		screen.DrawImage(r.actionBar, op)
	} else {
		vector.DrawFilledRect(screen, 0, config.ToolbarY, config.ScreenWidth, config.ScreenHeight-config.ToolbarY, config.ToolbarColor, false)
	}
}

// DrawEntities draws defenders first, then attackers, then projectiles.
func (r *Renderer) DrawEntities(screen *ebiten.Image, w *entity.World) {
	for _, group := range []types.Group{types.GroupDefender, types.GroupAttacker, types.GroupProjectile} {
		w.Each(func(e entity.Entity) bool {
			if b := e.Core(); b.Group == group {
				r.drawEntity(screen, b)
			}
			return true
		})
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, b *entity.Base) {
	var img *ebiten.Image
	if r.sprites != nil {
		img = r.sprites.Frame(b.Animation.Res, b.Animation.Frame)
	}
	if img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.Position.X, b.Position.Y)
		screen.DrawImage(img, op)
	} else {
		x, y, w, h := placeholderRect(b)
		vector.DrawFilledRect(screen, x, y, w, h, b.Visuals.Color, false)
	}

	if b.Group != types.GroupProjectile && b.Health.Wounded() {
		label := fmt.Sprintf("%d", int(math.Ceil(b.Health.Value)))
		text.Draw(screen, label, r.face, int(b.Position.X)+4, int(b.Position.Y)+config.HealthTextOffY, config.TextLightColor)
	}
}

// placeholderRect centers the unit's visual box in the square it occupies.
func placeholderRect(b *entity.Base) (x, y, w, h float32) {
	w, h = float32(b.Visuals.Width), float32(b.Visuals.Height)
	if w <= 0 || h <= 0 {
		w, h = grid.Space/2, grid.Space/2
	}
	x = float32(b.Position.X) + (grid.Space-w)/2
	y = float32(b.Position.Y) + (grid.Space-h)/2
	return x, y, w, h
}

// DrawSelection draws the pulsating square under the pointer in edit modes.
func (r *Renderer) DrawSelection(screen *ebiten.Image, g *app.Game, seconds float64) {
	mode := g.EditMode()
	if mode == component.EditIdle {
		return
	}
	cell, ok := g.Pointer()
	if !ok {
		return
	}
	base := config.PlaceColor
	if mode == component.EditRemove {
		base = config.RemoveColor
	}
	c := color.NRGBA{R: base.R, G: base.G, B: base.B, A: pulseAlpha(seconds, config.SelectionPulseHz)}
	x, y := cell.Origin()
	vector.DrawFilledRect(screen, float32(x), float32(y), grid.Space, grid.Space, c, false)
}

// pulseAlpha oscillates between 32 and 160 at hz.
func pulseAlpha(seconds, hz float64) uint8 {
	s := (math.Sin(2*math.Pi*hz*seconds) + 1) / 2
	return uint8(32 + s*128)
}

// DrawHUD prints the banks and the wave count.
func (r *Renderer) DrawHUD(screen *ebiten.Image, g *app.Game) {
	text.Draw(screen, hudLine(g), r.face, 10, config.HUDTextY, config.TextLightColor)
	r.waves.Draw(screen, r.face, g.Waves())
}

func hudLine(g *app.Game) string {
	return fmt.Sprintf("Bananas: %d   Score: %d   Kills: %d", g.Bananas(), g.Score(), g.TotalKills())
}

// DrawBanner prints centered lines over a dimmed screen.
func (r *Renderer) DrawBanner(screen *ebiten.Image, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		x := (config.ScreenWidth - text.BoundString(r.face, line).Dx()) / 2
		text.Draw(screen, line, r.face, x, y, config.TextLightColor)
		y += 20
	}
}
