// internal/app/game.go
package app

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jungle-defense/internal/component"
	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/entity"
	"jungle-defense/internal/event"
	"jungle-defense/internal/system"
	"jungle-defense/internal/utils"
	"jungle-defense/pkg/grid"
)

// Game is one play session: it owns the world, the spawn director and the
// player's edit state. The presentation layer drives it through Tick and the
// input methods and reads the HUD getters.
type Game struct {
	cfg      *config.Config
	lib      *defs.Library
	log      *zap.Logger
	id       uuid.UUID
	rng      *utils.PRNGService
	events   *event.Dispatcher
	world    *entity.World
	director *system.Director

	mode       component.EditMode
	selected   int
	pointer    grid.Cell
	pointerSet bool

	kills map[string]int
}

// NewGame starts a session. frames may be nil when no sprites are loaded.
func NewGame(cfg *config.Config, lib *defs.Library, frames entity.FrameSource, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	rng := utils.NewPRNGService(cfg.Session.Seed)
	events := event.NewDispatcher()
	world := entity.NewWorld(cfg, rng, frames, events)

	g := &Game{
		cfg:    cfg,
		lib:    lib,
		log:    log.With(zap.String("session", id.String())),
		id:     id,
		rng:    rng,
		events: events,
		world:  world,
		kills:  make(map[string]int),
	}
	g.director = system.NewDirector(world, lib, g.log)
	world.AddSystem(g.director)

	listener := &gameEventListener{game: g}
	events.Subscribe(event.AttackerKilled, listener)
	events.Subscribe(event.DefenderPlaced, listener)
	events.Subscribe(event.DefenderRemoved, listener)
	events.Subscribe(event.GameOver, listener)

	g.log.Info("session started",
		zap.Int64("seed", rng.Seed()),
		zap.Int("bananas", world.Bananas()),
		zap.Int("frame_rate", cfg.Engine.FrameRate))
	return g
}

// Tick advances the session by one fixed step. It does nothing once the game is over.
func (g *Game) Tick() {
	if g.world.GameOver() {
		return
	}
	g.world.Tick(g.cfg.DeltaTime())
}

func (g *Game) World() *entity.World { return g.world }

func (g *Game) Library() *defs.Library { return g.lib }

func (g *Game) Config() *config.Config { return g.cfg }

func (g *Game) Events() *event.Dispatcher { return g.events }

func (g *Game) SessionID() uuid.UUID { return g.id }

func (g *Game) Bananas() int { return g.world.Bananas() }

func (g *Game) Score() int { return g.world.Score() }

func (g *Game) GameOver() bool { return g.world.GameOver() }

func (g *Game) Waves() int { return g.director.Waves() }

func (g *Game) SpawnChance() int { return g.director.Chance() }

func (g *Game) Ticks() uint64 { return g.world.Ticks() }

// Kills returns a copy of the per attacker kind kill counters.
func (g *Game) Kills() map[string]int {
	out := make(map[string]int, len(g.kills))
	for k, v := range g.kills {
		out[k] = v
	}
	return out
}

func (g *Game) TotalKills() int {
	total := 0
	for _, v := range g.kills {
		total += v
	}
	return total
}

// Summary is a one-line description of the session state for logs.
func (g *Game) Summary() string {
	return fmt.Sprintf("score %d, bananas %d, waves %d, kills %d, live %d",
		g.Score(), g.Bananas(), g.Waves(), g.TotalKills(), g.world.Len())
}
