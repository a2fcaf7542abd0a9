// Package config resolves mathstar's settings from defaults, an optional
// YAML file, a .env file and MATHSTAR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidLevel   = errors.New("invalid log level")
)

type Config struct {
	Backend string `yaml:"backend"`

	// DBPath is the SQLite file. Empty means the XDG data default.
	DBPath string `yaml:"db_path"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`

	Log struct {
		Level string `yaml:"level"`
		// File receives the TUI's log output. Empty means the XDG state default.
		File string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	cfg.Backend = BackendSQLite
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.Prefix = "mathstar:"
	cfg.Log.Level = "info"
	return cfg
}

// Load builds the configuration. An empty path reads DefaultPath if it
// exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	dotenv, err := godotenv.Read(EnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read %s: %w", EnvFile, err)
	}
	if err := cfg.applyEnv(envLookup(dotenv)); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// envLookup prefers the process environment over values from the .env file.
func envLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"MATHSTAR_BACKEND":        &c.Backend,
		"MATHSTAR_DB":             &c.DBPath,
		"MATHSTAR_REDIS_ADDR":     &c.Redis.Addr,
		"MATHSTAR_REDIS_PASSWORD": &c.Redis.Password,
		"MATHSTAR_REDIS_PREFIX":   &c.Redis.Prefix,
		"MATHSTAR_LOG_LEVEL":      &c.Log.Level,
		"MATHSTAR_LOG_FILE":       &c.Log.File,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("MATHSTAR_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATHSTAR_REDIS_DB=%q: %w", v, err)
		}
		c.Redis.DB = n
	}
	return nil
}

// Validate normalizes case and rejects unknown values.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendSQLite, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/mathstar/config.yaml, falling back to
// ~/.config. It returns "" when no home directory can be found.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mathstar", "config.yaml")
}

// DefaultLogPath returns $XDG_STATE_HOME/mathstar/mathstar.log, falling back
// to ~/.local/state.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "mathstar", "mathstar.log"), nil
}
