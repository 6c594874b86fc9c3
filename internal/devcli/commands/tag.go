package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/e621"
	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewTagCommand groups the tag subcommands.
func NewTagCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Look up and search tags",
	}
	cmd.AddCommand(newTagGetCommand(opts), newTagSearchCommand(opts))
	return cmd
}

func newTagGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Fetch a tag by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			tag, err := devcli.NewClient(cfg).Tags.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			if tag == nil {
				return fmt.Errorf("tag %q does not exist", args[0])
			}
			devcli.PrintJSON(tag)
			return nil
		},
	}
}

func newTagSearchCommand(opts *GlobalOptions) *cobra.Command {
	var (
		name  string
		order string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			tags, err := devcli.NewClient(cfg).Tags.Search(ctx, e621.SearchTagsOptions{
				Name:  name,
				Order: e621.SearchTagsOrder(order),
				Limit: limit,
			})
			if err != nil {
				return err
			}
			devcli.PrintJSON(tags)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "name pattern (* wildcards)")
	cmd.Flags().StringVar(&order, "order", "", "date, count or name")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "tags per page")
	return cmd
}
