// cmd/headless/main.go

// Command headless runs sessions without a window, for balance testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
	"jungle-defense/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	seed := flag.Int64("seed", 1, "seed of the first session")
	sessions := flag.Int("sessions", 1, "number of sessions, seeds seed..seed+n-1")
	maxTicks := flag.Uint64("max-ticks", 60*60*30, "stop a session after this many ticks, 0 = until game over")
	paced := flag.Bool("paced", false, "run at the configured frame rate instead of as fast as possible")
	script := flag.String("place", "", `opening placements, e.g. "tree@1,3;prod_monkey@2,3;monkey@0,3"`)
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

	lib, err := defs.Load(cfg.Session.UnitsFile)
	if err != nil {
		log.Fatal("load unit definitions", zap.Error(err))
	}
	plan, err := parsePlacements(*script)
	if err != nil {
		log.Fatal("parse placements", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep(ctx, cfg, lib, plan, *seed, *sessions, *paced, *maxTicks, log)
	if err != nil {
		log.Error("sweep interrupted", zap.Error(err))
	}
	for _, r := range results {
		log.Info("session finished",
			zap.Int64("seed", r.Seed),
			zap.Uint64("ticks", r.Ticks),
			zap.Int("score", r.Score),
			zap.Int("waves", r.Waves),
			zap.Int("kills", r.Kills),
			zap.Int("placed", r.Placed),
			zap.Bool("game_over", r.Over))
	}
}

// sweep runs one session per seed in parallel. Sessions share the read-only
// library; each gets its own copy of the config.
func sweep(ctx context.Context, cfg *config.Config, lib *defs.Library, plan []placement, first int64, n int, paced bool, maxTicks uint64, log *zap.Logger) ([]result, error) {
	if n < 1 {
		n = 1
	}
	frame := cfg.FrameDuration()
	if !paced {
		frame = 0
	}

	results := make([]result, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		sessionCfg := *cfg
		sessionCfg.Session.Seed = first + int64(i)
		g.Go(func() error {
			r, err := runSession(ctx, &sessionCfg, lib, plan, frame, maxTicks, log.With(zap.Int64("seed", sessionCfg.Session.Seed)))
			results[i] = r
			return err
		})
	}
	err := g.Wait()
	sort.Slice(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, err
}
