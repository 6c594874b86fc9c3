package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/e621"
	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewPostCommand groups the post subcommands.
func NewPostCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Look up and search posts",
	}
	cmd.AddCommand(
		newPostGetCommand(opts),
		newPostMD5Command(opts),
		newPostSearchCommand(opts),
	)
	return cmd
}

func newPostGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a post by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			post, err := devcli.NewClient(cfg).Posts.Get(ctx, id)
			if err != nil {
				return err
			}
			if post == nil {
				return fmt.Errorf("post %d does not exist", id)
			}
			devcli.PrintJSON(post)
			return nil
		},
	}
}

func newPostMD5Command(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "md5 <md5>",
		Short: "Fetch a post by its file md5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			post, err := devcli.NewClient(cfg).Posts.GetByMD5(ctx, args[0])
			if err != nil {
				return err
			}
			if post == nil {
				return fmt.Errorf("no post with md5 %s", args[0])
			}
			devcli.PrintJSON(post)
			return nil
		},
	}
}

func newPostSearchCommand(opts *GlobalOptions) *cobra.Command {
	var (
		page  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search [tags...]",
		Short: "Search posts by tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			posts, err := devcli.NewClient(cfg).Posts.Search(ctx, e621.SearchPostsOptions{
				Tags: args, Page: page, Limit: limit,
			})
			if err != nil {
				return err
			}
			devcli.PrintJSON(posts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&page, "page", "p", "", `page number, or "a<id>"/"b<id>" cursors`)
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "posts per page (max 320)")
	return cmd
}
