package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newTokenCommand(rt func() (*runtime, error)) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token for POST /api/v1/patches/load",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt()
			if err != nil {
				return err
			}
			defer app.Close()

			token, err := app.services.Auth.IssueAdminToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
