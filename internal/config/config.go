// Package config manages application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds all application configuration for channel scans.
type Config struct {
	// YtdlpPath is the path to the yt-dlp executable (default: "yt-dlp")
	YtdlpPath string
	// YtdlpTimeout bounds every yt-dlp invocation
	YtdlpTimeout time.Duration
	// ExtraArgs are prepended to every yt-dlp invocation (e.g. cookies)
	ExtraArgs []string
	// InvocationRate caps yt-dlp starts per second (0 = unlimited)
	InvocationRate float64
	// LogLevel is one of debug, info, warn, error
	LogLevel string
	// OutputDir is where result files go when no explicit path is given
	OutputDir string
}

// fileConfig is the on-disk shape of ytscan.json. Durations are strings
// accepted by time.ParseDuration.
type fileConfig struct {
	YtdlpPath      *string  `json:"ytdlp_path"`
	YtdlpTimeout   *string  `json:"ytdlp_timeout"`
	ExtraArgs      []string `json:"ytdlp_extra_args"`
	InvocationRate *float64 `json:"invocation_rate"`
	LogLevel       *string  `json:"log_level"`
	OutputDir      *string  `json:"output_dir"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		YtdlpPath:    "yt-dlp",
		YtdlpTimeout: 300 * time.Second,
		LogLevel:     "info",
		OutputDir:    ".",
	}
}

// Load builds the configuration from defaults, an optional .env file, an
// optional ytscan.json and YTSCAN_* environment variables, later layers
// overriding earlier ones.
func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	return load(".env", searchPaths(home))
}

func searchPaths(home string) []string {
	paths := []string{"ytscan.json"}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "ytscan", "ytscan.json"))
	}
	return paths
}

func load(dotenv string, paths []string) (*Config, error) {
	// godotenv never overrides variables already set in the process.
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenv, err)
	}

	cfg := DefaultConfig()
	if err := cfg.loadFromFile(paths); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile applies the first config file found in paths.
func (c *Config) loadFromFile(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}

		var fc fileConfig
		if err := json.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if err := c.apply(fc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

func (c *Config) apply(fc fileConfig) error {
	if fc.YtdlpPath != nil {
		c.YtdlpPath = *fc.YtdlpPath
	}
	if fc.YtdlpTimeout != nil {
		d, err := time.ParseDuration(*fc.YtdlpTimeout)
		if err != nil {
			return fmt.Errorf("ytdlp_timeout: %w", err)
		}
		c.YtdlpTimeout = d
	}
	if fc.ExtraArgs != nil {
		c.ExtraArgs = fc.ExtraArgs
	}
	if fc.InvocationRate != nil {
		c.InvocationRate = *fc.InvocationRate
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.OutputDir != nil {
		c.OutputDir = *fc.OutputDir
	}
	return nil
}

// loadFromEnv overrides config with YTSCAN_* environment variables. Unset
// variables keep the current value.
func (c *Config) loadFromEnv() {
	c.YtdlpPath = env.Str("YTSCAN_YTDLP_PATH", c.YtdlpPath)
	c.YtdlpTimeout = env.Duration("YTSCAN_YTDLP_TIMEOUT", c.YtdlpTimeout)
	if args := env.List("YTSCAN_YTDLP_EXTRA_ARGS", ""); len(args) > 0 {
		c.ExtraArgs = args
	}
	c.InvocationRate = env.Float("YTSCAN_INVOCATION_RATE", c.InvocationRate)
	c.LogLevel = env.Str("YTSCAN_LOG_LEVEL", c.LogLevel)
	c.OutputDir = env.Str("YTSCAN_OUTPUT_DIR", c.OutputDir)
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.YtdlpPath == "" {
		return fmt.Errorf("%w: ytdlp_path must not be empty", ErrInvalidConfig)
	}
	if c.YtdlpTimeout <= 0 {
		return fmt.Errorf("%w: ytdlp_timeout must be positive", ErrInvalidConfig)
	}
	if c.InvocationRate < 0 {
		return fmt.Errorf("%w: invocation_rate must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Limiter returns the yt-dlp invocation limiter, or nil when unlimited.
func (c *Config) Limiter() *rate.Limiter {
	if c.InvocationRate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.InvocationRate), 1)
}
