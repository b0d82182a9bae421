// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and RIVALGOALS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/rivalgoals/internal/store"
)

// Config holds process-level settings. User preferences (name, pomodoro
// durations, theme) live in the persisted state instead.
type Config struct {
	// DBPath overrides the SQLite location. Empty uses store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// LogFile receives slog output. Empty uses <data dir>/rivalgoals.log.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// ColorScheme is the host preference used for a first-run theme:
	// "light", "dark" or empty to probe COLORFGBG.
	ColorScheme string `yaml:"color_scheme"`

	RivalInterval time.Duration `yaml:"rival_interval"`

	// MetricsFile, when set, receives a Prometheus textfile on exit.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:      "info",
		RivalInterval: 20 * time.Second,
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
	}
	return filepath.Join(dir, "rivalgoals", "config.yaml"), nil
}

// Load reads the default config file and ./.env.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path, ".env")
}

// LoadFrom layers the YAML file at configPath, the dotenv file at envPath and
// the process environment over Default. Missing files are skipped.
func LoadFrom(configPath, envPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
			}
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("RIVALGOALS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RIVALGOALS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("RIVALGOALS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RIVALGOALS_COLOR_SCHEME"); v != "" {
		cfg.ColorScheme = v
	}
	if v := os.Getenv("RIVALGOALS_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if v := os.Getenv("RIVALGOALS_RIVAL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("RIVALGOALS_RIVAL_INTERVAL: %w", err)
		}
		cfg.RivalInterval = d
	}
	return cfg, nil
}

// Validate checks enumerated fields and the rival interval.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.ColorScheme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("unknown color scheme %q (want light or dark)", c.ColorScheme)
	}
	if c.RivalInterval <= 0 {
		return fmt.Errorf("rival interval must be positive, got %s", c.RivalInterval)
	}
	return nil
}

// ResolveDBPath returns the database path, creating its directory.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath == "" {
		return store.DefaultDBPath()
	}
	return c.DBPath, store.EnsureDir(c.DBPath)
}

// ResolveLogFile returns the log file path, creating its directory.
func (c Config) ResolveLogFile() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, store.EnsureDir(c.LogFile)
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "rivalgoals.log")
	return p, store.EnsureDir(p)
}

// Level returns the configured slog level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// PrefersDark reports the host color-scheme preference, or nil when it cannot
// be determined.
func (c Config) PrefersDark() *bool {
	switch c.ColorScheme {
	case "dark":
		return ptr(true)
	case "light":
		return ptr(false)
	}
	return colorFGBG(os.Getenv("COLORFGBG"))
}

// colorFGBG reads the "fg;bg" convention set by rxvt-derived terminals. The
// low ANSI colors except 7 (white) are dark backgrounds.
func colorFGBG(v string) *bool {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return nil
	}
	return ptr(bg < 7 || bg == 8)
}

func ptr[T any](v T) *T { return &v }
