package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	DefaultFile = "numbers.hcl"
)

// Config holds everything needed to build an App.
type Config struct {
	LeaderboardPath    string `env:"NUMBERS_LEADERBOARD_PATH"`
	LeaderboardBackend string `env:"NUMBERS_LEADERBOARD_BACKEND"`
	LogLevel           string `env:"NUMBERS_LOG_LEVEL"`
	LogFormat          string `env:"NUMBERS_LOG_FORMAT"`
	Seed               int64  `env:"NUMBERS_SEED"` // 0 means time-based
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LeaderboardPath:    "leaderboard.json",
		LeaderboardBackend: BackendJSON,
		LogLevel:           "warn",
		LogFormat:          "text",
	}
}

type hclFile struct {
	Seed        *int64          `hcl:"seed,optional"`
	Leaderboard *hclLeaderboard `hcl:"leaderboard,block"`
	Log         *hclLog         `hcl:"log,block"`
}

type hclLeaderboard struct {
	Path    *string `hcl:"path,optional"`
	Backend *string `hcl:"backend,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// ApplyFile overlays settings from the HCL file at path. A missing file is
// an error only when required is set.
func ApplyFile(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if parsed.Seed != nil {
		cfg.Seed = *parsed.Seed
	}
	if lb := parsed.Leaderboard; lb != nil {
		setString(&cfg.LeaderboardPath, lb.Path)
		setString(&cfg.LeaderboardBackend, lb.Backend)
	}
	if l := parsed.Log; l != nil {
		setString(&cfg.LogLevel, l.Level)
		setString(&cfg.LogFormat, l.Format)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ApplyEnv overlays any NUMBERS_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate normalizes case and rejects unknown values.
func (c *Config) Validate() error {
	c.LeaderboardBackend = strings.ToLower(strings.TrimSpace(c.LeaderboardBackend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if strings.TrimSpace(c.LeaderboardPath) == "" {
		return errors.New("leaderboard path cannot be empty")
	}
	switch c.LeaderboardBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid leaderboard backend %q: must be 'json' or 'sqlite'", c.LeaderboardBackend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
