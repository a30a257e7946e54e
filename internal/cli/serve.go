package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"os-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr)
			if err := app.Listen(addr); err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
