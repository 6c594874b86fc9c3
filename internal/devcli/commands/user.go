package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DonovanDMC/e621-go/e621"
	"github.com/DonovanDMC/e621-go/internal/devcli"
)

// NewUserCommand groups the user subcommands.
func NewUserCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up users",
	}
	cmd.AddCommand(newUserGetCommand(opts), newUserSelfCommand(opts), newUserFavoritesCommand(opts))
	return cmd
}

func newUserGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|name>",
		Short: "Fetch a user by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			cl := devcli.NewClient(cfg)

			var user *e621.User
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				user, err = cl.Users.Get(ctx, id)
			} else {
				user, err = cl.Users.GetByName(ctx, args[0])
			}
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %s does not exist", args[0])
			}
			devcli.PrintJSON(user)
			return nil
		},
	}
}

func newUserSelfCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Fetch the authenticated user's own profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			self, err := devcli.NewClient(cfg).Users.Self(ctx)
			if err != nil {
				return err
			}
			devcli.PrintJSON(self)
			return nil
		},
	}
}

func newUserFavoritesCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites [id]",
		Short: "List a user's favorites (own favorites when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if len(args) == 1 {
				var err error
				if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
					return fmt.Errorf("invalid user id %q", args[0])
				}
			}
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(cfg)
			defer cancel()
			posts, err := devcli.NewClient(cfg).Users.Favorites(ctx, id)
			if err != nil {
				return err
			}
			devcli.PrintJSON(posts)
			return nil
		},
	}
}
