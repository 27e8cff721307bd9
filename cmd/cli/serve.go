package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/config"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/server"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  `Start the HTTP API server along with the background maintenance scheduler.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	return cmd
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log.Info().Str("address", cfg.HTTPAddress).Msg("Starting API server")

	deps, err := BuildAppDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	if err := deps.Scheduler.Start(ctx); err != nil {
		return err
	}
	defer deps.Scheduler.Stop()

	app := server.NewHTTPServer(deps.Server)

	if err := app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("API server stopped")
	return nil
}
