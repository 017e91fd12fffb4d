// internal/state/deps.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"jungle-defense/internal/app"
	"jungle-defense/internal/assets"
	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/leaderboard"
	"jungle-defense/internal/render"
)

// Scoreboard is the remote board the menu reads and the game-over screen writes.
type Scoreboard interface {
	leaderboard.Submitter
	leaderboard.Fetcher
}

// Deps is what every screen needs. Assets and Board may be nil.
type Deps struct {
	Config  *config.Config
	Library *defs.Library
	Assets  *assets.Manager
	Board   Scoreboard
	Log     *zap.Logger
}

// NewSession starts a game with the loaded sprites, if any.
func (d *Deps) NewSession() *app.Game {
	if d.Assets == nil {
		return app.NewGame(d.Config, d.Library, nil, d.Log)
	}
	return app.NewGame(d.Config, d.Library, d.Assets, d.Log)
}

// NewRenderer builds a renderer over the loaded art, or placeholders.
func (d *Deps) NewRenderer() *render.Renderer {
	if d.Assets == nil {
		return render.NewRenderer(nil, nil, nil)
	}
	return render.NewRenderer(d.Assets, d.Assets.Background, d.Assets.ActionBar)
}

func (d *Deps) icon(r *render.Renderer, slot int) *ebiten.Image {
	if slot < 0 || slot >= len(d.Library.Placeables) {
		return nil
	}
	return r.Icon(d.Library.Defenders[d.Library.Placeables[slot]].Animation.Res)
}
