package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"arcadia/domain/leaderboard"
	"arcadia/domain/registry"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the full arcade configuration.
type Config struct {
	Registry    RegistryConfig    `yaml:"registry"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Log         LogConfig         `yaml:"log"`
}

type RegistryConfig struct {
	// Capacity is the minimum slot count; the registry rounds it up to a prime.
	Capacity int `yaml:"capacity" validate:"gte=2"`
	// Grow rehashes a crowded table instead of rejecting new players.
	Grow bool `yaml:"grow"`
}

type LeaderboardConfig struct {
	MaxLevel int `yaml:"max_level" validate:"gte=1,lte=32"`
	// Seed fixes the level generator. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Registry:    RegistryConfig{Capacity: registry.DefaultCapacity},
		Leaderboard: LeaderboardConfig{MaxLevel: leaderboard.DefaultMaxLevel},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps Log.Level onto slog. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ARCADIA_REGISTRY_CAPACITY"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ARCADIA_REGISTRY_CAPACITY: %w", err)
		}
		cfg.Registry.Capacity = i
	}
	if v := os.Getenv("ARCADIA_REGISTRY_GROW"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ARCADIA_REGISTRY_GROW: %w", err)
		}
		cfg.Registry.Grow = b
	}
	if v := os.Getenv("ARCADIA_LEADERBOARD_MAX_LEVEL"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ARCADIA_LEADERBOARD_MAX_LEVEL: %w", err)
		}
		cfg.Leaderboard.MaxLevel = i
	}
	if v := os.Getenv("ARCADIA_LEADERBOARD_SEED"); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ARCADIA_LEADERBOARD_SEED: %w", err)
		}
		cfg.Leaderboard.Seed = i
	}
	if v := os.Getenv("ARCADIA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ARCADIA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
