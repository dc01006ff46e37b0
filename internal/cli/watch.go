package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/audwofla/Aramalyze/internal/cycle"
	"github.com/spf13/cobra"
)

func newWatchCommand(rt func() (*runtime, error)) *cobra.Command {
	var withAssets bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically load the newest canonical document",
		Long: `Run load cycles forever. Each cycle optionally mirrors Data Dragon assets,
then loads the greatest-versioned canonical document. A failed cycle is
logged and the next one starts after watch.interval.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt()
			if err != nil {
				return err
			}
			defer app.Close()

			interval := app.cfg.Watch.Interval
			if cmd.Flags().Changed("interval") {
				interval, _ = cmd.Flags().GetDuration("interval")
			}

			var steps []cycle.Step
			if withAssets {
				steps = append(steps, cycle.Step{Name: "sync-assets", Run: func(ctx context.Context) error {
					_, err := app.services.Asset.Sync(ctx)
					return err
				}})
			}
			steps = append(steps, cycle.Step{Name: "load-latest", Run: func(ctx context.Context) error {
				_, err := app.services.Patch.Load(ctx, "", "")
				return err
			}})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = cycle.NewRunner(interval, app.log, steps...).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().Duration("interval", 0, "time between cycles (default watch.interval)")
	cmd.Flags().BoolVar(&withAssets, "with-assets", false, "sync Data Dragon assets before each load")

	return cmd
}
