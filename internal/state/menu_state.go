// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"

	"jungle-defense/internal/config"
	"jungle-defense/internal/leaderboard"
	"jungle-defense/internal/render"
	"jungle-defense/internal/ui"
)

// MenuState asks for the player name and shows the top scores.
type MenuState struct {
	sm       *StateMachine
	deps     *Deps
	renderer *render.Renderer
	name     *ui.NameField
	start    *ui.Button

	pending <-chan leaderboard.FetchResult
	scores  []leaderboard.Entry
	status  string
}

func NewMenuState(sm *StateMachine, deps *Deps) *MenuState {
	return &MenuState{
		sm:       sm,
		deps:     deps,
		renderer: deps.NewRenderer(),
		name:     ui.NewNameField(config.MaxPlayerNameLength),
		start:    ui.NewButton(650, 450, 300, 100, "Enter the Jungle", config.MenuButton),
	}
}

func (m *MenuState) Enter() {
	if m.deps.Board == nil {
		m.status = "leaderboard disabled"
		return
	}
	m.status = "loading scores..."
	m.pending = leaderboard.FetchAsync(m.deps.Board, m.deps.Config.Leaderboard.Timeout)
}

func (m *MenuState) Update(deltaTime float64) {
	m.collectScores()

	m.name.Type(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		m.name.Backspace()
	}

	startRequested := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		startRequested = startRequested || m.start.Contains(float64(x), float64(y))
	}
	if startRequested {
		m.sm.SetState(NewGameState(m.sm, m.deps, m.name.String()))
	}
}

func (m *MenuState) collectScores() {
	if m.pending == nil {
		return
	}
	select {
	case r := <-m.pending:
		m.pending = nil
		if r.Err != nil {
			m.deps.Log.Warn("could not load scores", zap.Error(r.Err))
			m.status = "scores unavailable"
			return
		}
		m.scores, m.status = r.Entries, ""
		if len(m.scores) == 0 {
			m.status = "no scores yet"
		}
	default:
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 35, 20, 255})
	face := m.renderer.Face()

	text.Draw(screen, "Name: "+m.name.String()+"_", face, 650, 420, config.TextLightColor)
	cx, cy := ebiten.CursorPosition()
	m.start.Draw(screen, face, m.start.Contains(float64(cx), float64(cy)))

	y := 60
	text.Draw(screen, "Top scores", face, 60, y, config.TextLightColor)
	if m.status != "" {
		text.Draw(screen, m.status, face, 60, y+20, config.TextLightColor)
	}
	for i, e := range m.scores {
		if i >= config.TopScoresShown {
			break
		}
		y += 20
		text.Draw(screen, fmt.Sprintf("%2d. %-11s %6d", e.Rank, e.Name, e.Score), face, 60, y, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
