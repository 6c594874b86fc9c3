package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/e621"
	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewPoolCommand groups the pool subcommands.
func NewPoolCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Look up and search pools",
	}
	cmd.AddCommand(newPoolGetCommand(opts), newPoolSearchCommand(opts))
	return cmd
}

func newPoolGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|name>",
		Short: "Fetch a pool by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			cl := devcli.NewClient(cfg)

			var pool *e621.Pool
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				pool, err = cl.Pools.Get(ctx, id)
			} else {
				pool, err = cl.Pools.GetByName(ctx, args[0])
			}
			if err != nil {
				return err
			}
			if pool == nil {
				return fmt.Errorf("pool %s does not exist", args[0])
			}
			devcli.PrintJSON(pool)
			return nil
		},
	}
}

func newPoolSearchCommand(opts *GlobalOptions) *cobra.Command {
	var (
		name     string
		creator  string
		category string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			pools, err := devcli.NewClient(cfg).Pools.Search(ctx, e621.SearchPoolsOptions{
				Name:     name,
				Creator:  creator,
				Category: e621.PoolCategory(category),
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			devcli.PrintJSON(pools)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "name pattern (* wildcards)")
	cmd.Flags().StringVar(&creator, "creator", "", "creator name")
	cmd.Flags().StringVar(&category, "category", "", "series or collection")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "pools per page")
	return cmd
}
