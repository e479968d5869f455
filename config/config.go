package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for scenestudio. Values come from an
// optional YAML file; environment variables override them.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Editor  EditorConfig  `yaml:"editor"`
}

// StorageConfig selects and configures the project store.
type StorageConfig struct {
	// Backend is one of memory, file, sqlite or postgres.
	Backend     string `yaml:"backend" env:"SCENESTUDIO_STORAGE" env-default:"file"`
	Dir         string `yaml:"dir" env:"SCENESTUDIO_PROJECT_DIR" env-default:"projects"`
	SQLitePath  string `yaml:"sqlite_path" env:"SCENESTUDIO_SQLITE_PATH" env-default:"scenestudio.db"`
	PostgresDSN string `yaml:"-" env:"SCENESTUDIO_POSTGRES_DSN"` // secret, env only
	// Watch reloads the project list when files change on disk (file backend only).
	Watch bool `yaml:"watch" env:"SCENESTUDIO_WATCH" env-default:"true"`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"SCENESTUDIO_LOG_LEVEL" env-default:"info"`
	Development bool   `yaml:"development" env:"SCENESTUDIO_LOG_DEV" env-default:"false"`
}

type EditorConfig struct {
	Width    int    `yaml:"width" env:"SCENESTUDIO_WIDTH" env-default:"1280"`
	Height   int    `yaml:"height" env:"SCENESTUDIO_HEIGHT" env-default:"720"`
	Template string `yaml:"template" env:"SCENESTUDIO_TEMPLATE" env-default:"platformer"`
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Load reads path (if it exists) and applies environment overrides. An empty
// or missing path falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			return cfg, cfg.Validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("config: postgres backend needs SCENESTUDIO_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Editor.Width <= 0 || c.Editor.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Editor.Width, c.Editor.Height)
	}
	return nil
}
