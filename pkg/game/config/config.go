// Package config loads maze generation settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the generator's configuration values.
type Config struct {
	Width             int    // Grid width in cells, odd
	Height            int    // Grid height in cells, odd
	CellSize          int    // Pixel edge of one cell in the PNG
	Output            string // PNG destination
	Seed              int64  // Random seed; 0 picks one from the clock
	Generator         string // Registered generator name
	PlacementAttempts int    // Start/end resampling cap
	LocaleDir         string // Directory holding translation catalogues
	Language          string // Catalogue language, e.g. en_GB
	LogLevel          string // logrus level name
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Width:             125,
		Height:            51,
		CellSize:          10,
		Output:            "maze.png",
		Generator:         "backtracker",
		PlacementAttempts: 1000,
		LocaleDir:         "locales",
		Language:          "en_GB",
		LogLevel:          "info",
	}
}

// Load reads an optional .env file from files (or ./.env when none given)
// and then the MAZE_* environment variables over the defaults.
// A missing .env is not an error; the returned bool reports whether one was read.
func Load(files ...string) (Config, bool, error) {
	loaded := godotenv.Load(files...) == nil
	cfg, err := FromEnv()
	return cfg, loaded, err
}

// FromEnv builds a Config from MAZE_* environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = getEnvAsInt("MAZE_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = getEnvAsInt("MAZE_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.CellSize, err = getEnvAsInt("MAZE_CELL_SIZE", cfg.CellSize); err != nil {
		return cfg, err
	}
	if cfg.PlacementAttempts, err = getEnvAsInt("MAZE_PLACEMENT_ATTEMPTS", cfg.PlacementAttempts); err != nil {
		return cfg, err
	}
	seed, err := getEnvAsInt("MAZE_SEED", 0)
	if err != nil {
		return cfg, err
	}
	cfg.Seed = int64(seed)

	cfg.Output = getEnvWithDefault("MAZE_OUTPUT", cfg.Output)
	cfg.Generator = getEnvWithDefault("MAZE_GENERATOR", cfg.Generator)
	cfg.LocaleDir = getEnvWithDefault("MAZE_LOCALE_DIR", cfg.LocaleDir)
	cfg.Language = getEnvWithDefault("MAZE_LANGUAGE", cfg.Language)
	cfg.LogLevel = getEnvWithDefault("MAZE_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// getEnvAsInt retrieves an integer environment variable or returns defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
