package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newLoadCommand(rt func() (*runtime, error)) *cobra.Command {
	var patch, file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load one canonical patch document",
		Long: `Load one canonical patch document into the database.

Without flags the greatest-versioned <patch>.json in the canonical directory
is loaded. --patch picks <canonical_dir>/<patch>.json, --file loads an
explicit path (the patch defaults to the file name).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt()
			if err != nil {
				return err
			}
			defer app.Close()

			stats, err := app.services.Patch.Load(cmd.Context(), patch, file)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}

	cmd.Flags().StringVar(&patch, "patch", "", "patch identifier, e.g. 14.10")
	cmd.Flags().StringVar(&file, "file", "", "explicit canonical document path")

	return cmd
}
