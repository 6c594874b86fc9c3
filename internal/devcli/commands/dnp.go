package commands

import (
	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewDNPCommand fetches and parses the avoid-posting list.
func NewDNPCommand(opts *GlobalOptions) *cobra.Command {
	var wikiPageID int64
	cmd := &cobra.Command{
		Use:   "dnp",
		Short: "Fetch the avoid-posting artist lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			list, err := devcli.NewClient(cfg).Artists.DoNotPost(ctx, wikiPageID)
			if err != nil {
				return err
			}
			devcli.PrintJSON(list)
			return nil
		},
	}
	cmd.Flags().Int64Var(&wikiPageID, "page-id", 0, "override the avoid-posting wiki page id")
	return cmd
}
