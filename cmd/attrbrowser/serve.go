package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"attribute-browser/internal/handlers"
	"attribute-browser/internal/loader"
	"attribute-browser/internal/navigation"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the attribute browser page and JSON API",
	Long: `Load the attribute document once and serve the browser page, the view
endpoint it calls on navigation and search, and a read-only JSON API.

If the document cannot be loaded the server still starts and the page shows
the load error instead of the views.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (env ATTRBROWSER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var api *handlers.API
	c, err := loader.New(cfg.FetchTimeout, logger).LoadCatalog(ctx, cfg.DataSource)
	if err != nil {
		logger.Error("Failed to load attribute document",
			zap.String("source", cfg.DataSource),
			zap.Error(err))
		api = handlers.NewFailedAPI(cfg.DataSource, err, logger)
	} else {
		api = handlers.NewAPI(navigation.NewController(c, logger), cfg.DataSource, logger)
	}

	router, err := handlers.NewRouter(api)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.Addr), zap.Bool("ready", api.Ready()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
