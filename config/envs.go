package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"snake-modes/game"
	"snake-modes/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the application's configuration values.
type Config struct {
	GridSize       int    // Cells per side of the square grid
	InitialSpeedMS int    // Tick interval at the start of a run (in milliseconds)
	SpeedStepMS    int    // Interval reduction per food eaten (in milliseconds)
	MinSpeedMS     int    // Fastest tick interval (in milliseconds)
	Mode           string // "walls" or "pass-through"
	Seed           int64  // Food RNG seed, 0 picks one from the clock

	ScoresFile   string // JSON score history, empty disables it
	SpectateAddr string // Listen address of the spectator feed, empty disables it
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		GridSize:       getEnvAsInt("SNAKE_GRID_SIZE", types.DefaultGridSize),
		InitialSpeedMS: getEnvAsInt("SNAKE_INITIAL_SPEED_MS", types.DefaultInitialSpeed),
		SpeedStepMS:    getEnvAsInt("SNAKE_SPEED_STEP_MS", types.DefaultSpeedStep),
		MinSpeedMS:     getEnvAsInt("SNAKE_MIN_SPEED_MS", types.DefaultMinSpeed),
		Mode:           getEnv("SNAKE_MODE", types.Walls.String()),
		Seed:           int64(getEnvAsInt("SNAKE_SEED", 0)),

		ScoresFile:   getEnv("SNAKE_SCORES_FILE", "data/scores.json"),
		SpectateAddr: getEnv("SNAKE_SPECTATE_ADDR", ""),
	}
}

// Game converts the settings into an engine configuration.
func (c Config) Game() (game.Config, error) {
	mode, err := types.ParseWallMode(c.Mode)
	if err != nil {
		return game.Config{}, errors.Wrap(game.ErrInvalidConfig, err.Error())
	}

	cfg := game.Config{
		GridSize:     c.GridSize,
		InitialSpeed: time.Duration(c.InitialSpeedMS) * time.Millisecond,
		SpeedStep:    time.Duration(c.SpeedStepMS) * time.Millisecond,
		MinSpeed:     time.Duration(c.MinSpeedMS) * time.Millisecond,
		InitialSnake: game.DefaultSnake(c.GridSize),
		Mode:         mode,
	}
	return cfg, cfg.Validate()
}

// getEnv retrieves the value of an environment variable, or fallback when it is not set.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves the value of an environment variable as an integer, or fallback when it is not set.
// A value that is set but not a number is fatal.
func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an integer: %v", ColorGreen, ColorReset, ColorRed, ColorReset, key, err)
	}
	return value
}
