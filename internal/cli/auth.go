package cli

import (
	"context"
	"fmt"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/fachebot/vid-summify/internal/svc"
	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				s, err := svcCtx.Session.SignIn(ctx, token)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", displayUser(s))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "access token issued by the summary service")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				if err := svcCtx.Session.SignOut(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
				return nil
			})
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svcCtx *svc.ServiceContext) error {
				current := svcCtx.Session.Current()
				if current.IsNone() {
					fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
					return nil
				}

				s := current.UnwrapOr(model.Session{})
				fmt.Fprintln(cmd.OutOrStdout(), displayUser(s))
				if s.ExpiresAt != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", model.FormatDate(*s.ExpiresAt))
				}
				return nil
			})
		},
	}
}

func displayUser(s model.Session) string {
	if s.Email != "" {
		return fmt.Sprintf("%s (%s)", s.Email, s.UserID)
	}
	return s.UserID
}
