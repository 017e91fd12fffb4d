// internal/state/gameover_state.go
package state

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"jungle-defense/internal/leaderboard"
)

// GameOverState shows the final score and sends it to the board.
type GameOverState struct {
	sm       *StateMachine
	deps     *Deps
	last     *GameState
	player   string
	submit   *leaderboard.Submission
	reported leaderboard.Status
}

func NewGameOverState(sm *StateMachine, deps *Deps, last *GameState, player string) *GameOverState {
	s := &GameOverState{sm: sm, deps: deps, last: last, player: player}
	if deps.Board != nil {
		s.submit = leaderboard.NewSubmission(deps.Board, deps.Config.Leaderboard.Timeout)
	}
	return s
}

func (s *GameOverState) Enter() {
	s.deps.Log.Info("game over", zap.String("summary", s.last.game.Summary()))
	s.send()
}

func (s *GameOverState) send() {
	if s.submit == nil {
		return
	}
	err := s.submit.Start(s.player, s.last.game.Score())
	if errors.Is(err, leaderboard.ErrEmptyName) {
		s.deps.Log.Info("score not submitted, no player name")
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	if s.submit != nil {
		status, rank, err := s.submit.Poll()
		if status != s.reported {
			s.reported = status
			switch status {
			case leaderboard.Sent:
				s.deps.Log.Info("score submitted", zap.Int("rank", rank))
			case leaderboard.Failed:
				s.deps.Log.Warn("score submission failed", zap.Error(err))
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.send()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm, s.deps))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	g := s.last.game
	s.last.renderer.DrawBanner(screen,
		"The jungle has fallen",
		fmt.Sprintf("Score %d   Waves %d   Kills %d", g.Score(), g.Waves(), g.TotalKills()),
		s.boardLine(),
		"ENTER for menu",
	)
}

func (s *GameOverState) boardLine() string {
	if s.submit == nil {
		return "leaderboard disabled"
	}
	status, rank, _ := s.submit.Poll()
	switch status {
	case leaderboard.Sent:
		return fmt.Sprintf("rank %d", rank)
	case leaderboard.Failed:
		return "submission failed, S to retry"
	case leaderboard.Pending:
		return "submitting score..."
	}
	return "enter a name in the menu to be ranked"
}

func (s *GameOverState) Exit() {}
