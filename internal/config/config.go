// Package config assembles runtime settings from an optional .env file,
// an optional YAML file and CASEFLOW_* environment variables, in that
// order of increasing precedence.
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

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format   string `yaml:"format"`
	UseCases bool   `yaml:"use_cases"`
}

type ServerConfig struct {
	Addr              string `yaml:"addr"`
	ReadTimeoutMs     int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs    int    `yaml:"write_timeout_ms"`
	ShutdownTimeoutMs int    `yaml:"shutdown_timeout_ms"`
}

type Config struct {
	DBPath           string           `yaml:"db_path"`
	DefaultViewpoint domain.Viewpoint `yaml:"default_viewpoint"`
	Log              LogConfig        `yaml:"log"`
	Server           ServerConfig     `yaml:"server"`
}

// DefaultConfig stores data under ~/.caseflow and serves on :8080.
func DefaultConfig() Config {
	return Config{
		DBPath:           filepath.Join(homeDir(), ".caseflow", "caseflow.db"),
		DefaultViewpoint: domain.ViewpointGeneral,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadTimeoutMs:     5000,
			WriteTimeoutMs:    10000,
			ShutdownTimeoutMs: 5000,
		},
	}
}

// DefaultPath is the YAML file read when CASEFLOW_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".caseflow", "config.yaml")
}

// Load reads .env from the working directory when present, then the YAML
// file named by CASEFLOW_CONFIG (or DefaultPath if it exists), then
// applies environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := DefaultConfig()
	path := os.Getenv("CASEFLOW_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML file over the defaults without consulting the
// environment.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CASEFLOW_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CASEFLOW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CASEFLOW_VIEWPOINT"); v != "" {
		c.DefaultViewpoint = domain.Viewpoint(v)
	}
	if v := os.Getenv("CASEFLOW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CASEFLOW_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("CASEFLOW_LOG_USECASES"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CASEFLOW_LOG_USECASES must be a boolean, got %q", v)
		}
		c.Log.UseCases = enabled
	}
	return nil
}

// Validate normalises the viewpoint and rejects unknown settings.
func (c *Config) Validate() error {
	vp, err := domain.ParseViewpoint(string(c.DefaultViewpoint))
	if err != nil {
		return fmt.Errorf("default_viewpoint: %w", err)
	}
	c.DefaultViewpoint = vp

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	return nil
}

// SlogLevel maps Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
