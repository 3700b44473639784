// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/app"
)

const (
	EnvDBPath   = "TRACKER_DB"
	EnvLogLevel = "LOG_LEVEL"
)

// Config holds all settings for a tracker invocation.
type Config struct {
	// DBPath is the SQLite file foods are stored in.
	DBPath   string
	LogLevel slog.Level
}

// Load reads settings from the environment after merging in an optional
// .env file from the working directory. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv file. A missing file is ignored.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	dbPath := strings.TrimSpace(os.Getenv(EnvDBPath))
	if dbPath == "" {
		def, err := app.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = def
	}

	return &Config{
		DBPath:   dbPath,
		LogLevel: GetLogLevel(),
	}, nil
}
