// @title Indianapolis 500 Winners
// @version 1.0
// @description Paginated listing of Indianapolis 500 winners.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"indywinners/config"
	"indywinners/internal/adapters/page"
	delivery "indywinners/internal/delivery/http"
	"indywinners/internal/delivery/http/controllers"
	"indywinners/internal/delivery/http/middleware"
	"indywinners/internal/repository/postgres"
	"indywinners/internal/services"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.Log.Level)

	// Check for migration subcommands
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(cfg, logger, os.Args[2:]); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	source, err := newPageSource(cfg.PageSource, db, logger)
	if err != nil {
		return err
	}
	renderer, err := page.NewRenderer()
	if err != nil {
		return err
	}

	winnerController := controllers.NewWinnerController(logger, services.NewWinnerService(source), renderer, cfg.StrictPageParam)
	healthController := controllers.NewHealthController(logger, db)
	router := delivery.NewRouter(winnerController, healthController)

	handler := middleware.CORS(cfg.AllowedOrigins(), router)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("page_source", cfg.PageSource).
			Str("driver", cfg.Database.Driver).
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("received shutdown signal, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func handleMigrationCommand(cfg *config.Config, logger zerolog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: server migrate [up|down [n]|status]")
	}

	steps := 1
	if args[0] == "down" && len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid steps value: %q", args[1])
		}
		steps = n
	}

	db, err := postgres.Open(context.Background(), cfg.Database, logger)
	if err != nil {
		return err
	}
	// The migrator closes db; Close is safe to repeat.
	defer db.Close()

	switch args[0] {
	case "up":
		version, err := postgres.MigrateUp(db)
		if err != nil {
			return err
		}
		logger.Info().Uint("version", version).Msg("migrations applied")
	case "down":
		version, err := postgres.MigrateDown(db, steps)
		if err != nil {
			return err
		}
		logger.Info().Uint("version", version).Int("steps", steps).Msg("migrations rolled back")
	case "status":
		version, dirty, err := postgres.MigrateStatus(db)
		if err != nil {
			return err
		}
		logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migration status")
	default:
		return fmt.Errorf("unknown migration command: %s", args[0])
	}
	return nil
}
