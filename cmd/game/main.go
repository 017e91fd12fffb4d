// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"jungle-defense/internal/assets"
	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/leaderboard"
	"jungle-defense/internal/logging"
	"jungle-defense/internal/state"
)

const maxDeltaTime = 0.1

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	offline := flag.Bool("offline", false, "disable the leaderboard")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *pprofAddr != "" {
		go func() {
			log.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	lib, err := defs.Load(cfg.Session.UnitsFile)
	if err != nil {
		log.Fatal("load unit definitions", zap.Error(err))
	}
	art, err := assets.Load(cfg.Assets.Dir, lib, log)
	if err != nil {
		log.Fatal("load assets", zap.String("dir", cfg.Assets.Dir), zap.Error(err))
	}

	deps := &state.Deps{Config: cfg, Library: lib, Assets: art, Log: log}
	if !*offline && cfg.Leaderboard.BaseURL != "" {
		deps.Board = leaderboard.NewClient(cfg.Leaderboard, log)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, deps))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(cfg.Engine.FrameRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Jungle Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal("game loop", zap.Error(err))
	}
}
