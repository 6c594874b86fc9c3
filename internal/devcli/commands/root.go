// Package commands implements the e621dev command tree with cobra.
// Commands are thin wrappers over the SDK: load config, build a client,
// run one operation, print the JSON result.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Host       string
	Username   string
	APIKey     string
	Verbose    bool
}

// Config loads the layered configuration and applies flag overrides,
// which win over both the file and the environment.
func (g *GlobalOptions) Config() (devcli.Config, error) {
	cfg, err := devcli.Load(g.ConfigPath)
	if err != nil {
		return devcli.Config{}, err
	}
	if g.Host != "" {
		cfg.Host = g.Host
	}
	if g.Username != "" {
		cfg.Username = g.Username
	}
	if g.APIKey != "" {
		cfg.APIKey = g.APIKey
	}
	cfg.Verbose = g.Verbose
	return cfg, nil
}

// NewRootCommand creates the e621dev root command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "e621dev",
		Short: "e621dev - development CLI for the e621 SDK",
		Long: `e621dev exercises the SDK against a live instance: look up posts,
pools, tags, users and wiki pages, and inspect the avoid-posting list.

Credentials and instance settings come from ` + "~/.config/e621dev/config.toml" + `,
a local .env file, E621_* environment variables, or flags, in that order.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.Host, "host", "", "instance host (default e621.net)")
	cmd.PersistentFlags().StringVar(&opts.Username, "user", "", "username for authenticated calls")
	cmd.PersistentFlags().StringVar(&opts.APIKey, "key", "", "API key for authenticated calls")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace requests to stderr")

	cmd.AddCommand(
		NewPostCommand(opts),
		NewPoolCommand(opts),
		NewTagCommand(opts),
		NewUserCommand(opts),
		NewWikiCommand(opts),
		NewDNPCommand(opts),
	)
	return cmd
}
