package devcli

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/DonovanDMC/e621-go/e621"
)

// NewClient constructs an SDK client from the loaded configuration.
func NewClient(cfg Config) *e621.Client {
	opts := []e621.Option{
		e621.WithRequestTimeout(cfg.RequestTimeout()),
	}
	if cfg.Host != "" {
		opts = append(opts, e621.WithHost(cfg.Host))
	}
	if cfg.Port != 0 {
		opts = append(opts, e621.WithPort(cfg.Port))
	}
	if cfg.SSL != nil {
		opts = append(opts, e621.WithSSL(*cfg.SSL))
	}
	if cfg.Username != "" && cfg.APIKey != "" {
		opts = append(opts, e621.WithAuth(cfg.Username, cfg.APIKey))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, e621.WithUserAgent(cfg.UserAgent))
	}
	if len(cfg.Blacklist) > 0 {
		opts = append(opts, e621.WithBlacklist(cfg.Blacklist...))
	}
	if cfg.Verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
		opts = append(opts, e621.WithLogger(log))
	}
	return e621.New(opts...)
}

// Ctx returns a context bounded by the configured timeout.
func Ctx(cfg Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.RequestTimeout())
}
