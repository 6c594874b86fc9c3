package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/e621"
	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewWikiCommand groups the wiki page subcommands.
func NewWikiCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiki",
		Short: "Look up wiki pages",
	}
	cmd.AddCommand(newWikiGetCommand(opts))
	return cmd
}

func newWikiGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|title>",
		Short: "Fetch a wiki page by id or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			cl := devcli.NewClient(cfg)

			var page *e621.WikiPage
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				page, err = cl.WikiPages.Get(ctx, id)
			} else {
				page, err = cl.WikiPages.GetByTitle(ctx, args[0])
			}
			if err != nil {
				return err
			}
			if page == nil {
				return fmt.Errorf("wiki page %s does not exist", args[0])
			}
			devcli.PrintJSON(page)
			return nil
		},
	}
}
