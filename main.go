package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"snake-modes/config"
	"snake-modes/game"
	"snake-modes/game/manager"
	"snake-modes/spectate"
	"snake-modes/ui"

	logger "github.com/beka-birhanu/vinom-common/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

var appLogger game.Logger

func newLogger(prefix, color string) game.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func main() {
	grid := flag.Int("grid", config.Envs.GridSize, "Cells per side of the grid")
	speed := flag.Int("speed", config.Envs.InitialSpeedMS, "Initial tick interval in milliseconds (lower = faster)")
	mode := flag.String("mode", config.Envs.Mode, "Wall mode: walls or pass-through")
	seed := flag.Int64("seed", config.Envs.Seed, "Food RNG seed (0 = random)")
	scores := flag.String("scores", config.Envs.ScoresFile, "Score history file, empty to disable")
	spectateAddr := flag.String("spectate", config.Envs.SpectateAddr, "Spectator feed listen address, empty to disable")
	flag.Parse()

	appLogger = newLogger("APP", config.ColorGreen)

	settings := config.Envs
	settings.GridSize = *grid
	settings.InitialSpeedMS = *speed
	settings.Mode = *mode
	settings.Seed = *seed
	gameCfg, err := settings.Game()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Configuring game: %v", err))
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	engine, err := game.NewEngine(gameCfg, rand.New(rand.NewSource(uint64(*seed))))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating engine: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Engine ready: %dx%d grid, %s mode, seed %d", gameCfg.GridSize, gameCfg.GridSize, gameCfg.Mode, *seed))

	scoreBook := manager.NewScoreBook(*scores, newLogger("SCOREBOOK", config.ColorYellow))
	unsubscribeScores := engine.Subscribe(func(s game.Snapshot) {
		scoreBook.Observe(s.Status, s.Mode, s.Score, len(s.Snake))
	})
	defer unsubscribeScores()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *spectateAddr != "" {
		stopFeed := serveSpectators(ctx, engine, *spectateAddr)
		defer stopFeed()
	}

	scheduler := game.NewScheduler(engine, newLogger("SCHEDULER", config.ColorCyan))
	go func() {
		if err := scheduler.Run(ctx); err != nil && err != context.Canceled {
			appLogger.Error(fmt.Sprintf("Scheduler stopped: %v", err))
		}
	}()

	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		for _, cmd := range ui.PollCommands() {
			engine.Handle(cmd)
		}
		renderer.Draw(engine.Snapshot(), gameCfg.GridSize, scoreBook)
	}
	appLogger.Info(fmt.Sprintf("Window closed, high score %d", scoreBook.GetHighScore()))
}

// serveSpectators publishes every engine change on a websocket feed at addr.
func serveSpectators(ctx context.Context, engine *game.Engine, addr string) (stop func()) {
	feedLogger := newLogger("SPECTATE", config.ColorBlue)
	hub := spectate.NewHub(engine.Grid().Size, feedLogger)
	unsubscribe := engine.Subscribe(hub.Publish)
	hub.Publish(engine.Snapshot())

	mux := http.NewServeMux()
	mux.Handle("/spectate", hub)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		feedLogger.Info(fmt.Sprintf("Serving spectators at ws://%s/spectate", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			feedLogger.Error(fmt.Sprintf("Serving spectators: %v", err))
		}
	}()

	return func() {
		unsubscribe()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
