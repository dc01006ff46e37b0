package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/audwofla/Aramalyze/internal/api"
	"github.com/spf13/cobra"
)

func newServeCommand(rt func() (*runtime, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the champion read API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt()
			if err != nil {
				return err
			}
			defer app.Close()

			router := api.NewRouter(app.services, app.log)

			srv := &http.Server{
				Addr:         "0.0.0.0:" + app.cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 5 * time.Minute, // loads run inside the request
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				app.log.Info("Server starting", "port", app.cfg.Server.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.log.Info("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}

			app.log.Info("Server stopped")
			return nil
		},
	}
}
