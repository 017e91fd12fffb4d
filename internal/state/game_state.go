// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"jungle-defense/internal/app"
	"jungle-defense/internal/component"
	"jungle-defense/internal/render"
	"jungle-defense/internal/ui"
)

var selectKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState runs one session: one simulation tick per ebiten update.
type GameState struct {
	sm       *StateMachine
	deps     *Deps
	player   string
	game     *app.Game
	renderer *render.Renderer
	toolbar  *ui.Toolbar
	elapsed  float64
}

func NewGameState(sm *StateMachine, deps *Deps, player string) *GameState {
	return &GameState{
		sm:       sm,
		deps:     deps,
		player:   player,
		game:     deps.NewSession(),
		renderer: deps.NewRenderer(),
		toolbar:  ui.NewToolbar(deps.Library),
	}
}

// Game exposes the running session.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.elapsed += deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	x, y := ebiten.CursorPosition()
	g.game.Point(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if slot, ok := g.toolbar.HitTest(float64(x), float64(y)); ok {
			selectSlot(g.game, slot)
		} else {
			g.game.Apply()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.Cancel()
	}

	g.game.Tick()
	g.toolbar.Highlight(activeSlot(g.game))

	if g.game.GameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.deps, g, g.player))
	}
}

func (g *GameState) handleKeys() {
	for i, k := range selectKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.game.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.SetEditMode(component.EditRemove)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Cancel()
	}
}

// selectSlot maps a toolbar slot to an edit mode change.
func selectSlot(game *app.Game, slot int) {
	if slot == ui.RemoveSlot {
		game.SetEditMode(component.EditRemove)
		return
	}
	game.Select(slot)
}

// activeSlot reports which toolbar slot reflects the current edit mode.
func activeSlot(game *app.Game) (int, bool) {
	switch game.EditMode() {
	case component.EditRemove:
		return ui.RemoveSlot, true
	case component.EditPlace:
		return game.Selected(), true
	}
	return 0, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.DrawField(screen, g.deps.Config.Field.Rows)
	r.DrawEntities(screen, g.game.World())
	r.DrawSelection(screen, g.game, g.elapsed)
	r.DrawHUD(screen, g.game)

	cx, cy := ebiten.CursorPosition()
	g.toolbar.Draw(screen, r.Face(), float64(cx), float64(cy), func(slot int) *ebiten.Image {
		return g.deps.icon(r, slot)
	})
}

func (g *GameState) Exit() {}
