package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newSyncAssetsCommand(rt func() (*runtime, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-assets",
		Short: "Mirror Data Dragon champion metadata, icons and splashes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt()
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.Asset.Sync(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
