package devcli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment keys, applied on top of the config file.
const (
	EnvHost      = "E621_HOST"
	EnvPort      = "E621_PORT"
	EnvSSL       = "E621_SSL"
	EnvUsername  = "E621_USER"
	EnvAPIKey    = "E621_KEY"
	EnvUserAgent = "E621_USER_AGENT"
	EnvTimeout   = "E621_TIMEOUT" // seconds
)

const defaultConfigPath = "~/.config/e621dev/config.toml"

// Config captures everything the CLI needs to build a client. Values are
// layered: config file, then .env, then process environment, then flags.
type Config struct {
	Host      string   `toml:"host"`
	Port      int      `toml:"port"`
	SSL       *bool    `toml:"ssl"`
	Username  string   `toml:"username"`
	APIKey    string   `toml:"api_key"`
	UserAgent string   `toml:"user_agent"`
	Blacklist []string `toml:"blacklist"`
	Timeout   int      `toml:"timeout"`
	Verbose   bool     `toml:"-"`
}

// Load reads the TOML config at path (the default location when empty)
// and applies environment overrides. A missing file is not an error; a
// local .env file is folded into the environment first.
func Load(path string) (Config, error) {
	// Errors are ignored; a .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", resolved, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults and environment only.
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv(EnvSSL); v != "" {
		if ssl, err := strconv.ParseBool(v); err == nil {
			cfg.SSL = &ssl
		}
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = sec
		}
	}
	return cfg, nil
}

// RequestTimeout returns the configured timeout, defaulting to 30s.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
