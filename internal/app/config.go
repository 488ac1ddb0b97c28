package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "config.yaml"
	envFile    = ".env"

	defaultListen     = "127.0.0.1:8080"
	defaultMaxHistory = 1000
)

// Environment variables read by LoadConfig.
const (
	EnvHome       = "CALC_HOME"
	EnvPassphrase = "CALC_PASSPHRASE"
	EnvRemote     = "CALC_REMOTE"
	EnvListen     = "CALC_LISTEN"
	EnvMaxHistory = "CALC_MAX_HISTORY"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       `yaml:"-"`           // config directory, e.g. $HOME/.calc
	Passphrase string       `yaml:"passphrase"`  // encrypts the history when set
	Remote     string       `yaml:"remote"`      // calc server base URL; empty computes locally
	Listen     string       `yaml:"listen"`      // address for `calc serve`
	MaxHistory int          `yaml:"max_history"` // 0 keeps every entry
	NoHistory  bool         `yaml:"no_history"`
	Verbose    bool         `yaml:"verbose"`
	HTTP       *http.Client `yaml:"-"` // optional; defaults to http.DefaultClient
}

// DefaultHome returns $CALC_HOME, falling back to ~/.calc.
func DefaultHome() (string, error) {
	if h := os.Getenv(EnvHome); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".calc"), nil
}

// LoadConfig builds a Config for home. Later layers win: defaults, then
// config.yaml, then .env, then the process environment.
func LoadConfig(home string) (Config, error) {
	cfg := Config{
		Home:       home,
		Listen:     defaultListen,
		MaxHistory: defaultMaxHistory,
	}

	b, err := os.ReadFile(filepath.Join(home, configFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}

	fileEnv, err := godotenv.Read(filepath.Join(home, envFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("parse %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPassphrase); ok {
		c.Passphrase = v
	}
	if v, ok := lookup(EnvRemote); ok {
		c.Remote = v
	}
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.Listen = v
	}
	if v, ok := lookup(EnvMaxHistory); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: want a non-negative integer, got %q", EnvMaxHistory, v)
		}
		c.MaxHistory = n
	}
	return nil
}
