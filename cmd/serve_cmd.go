package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brand-showcase/pkg/config"
	"brand-showcase/pkg/forms"
	"brand-showcase/pkg/handlers"
	"brand-showcase/pkg/server"
	"brand-showcase/pkg/services"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the brand pages, the image API and the public directory via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := setup()
			defer func() { _ = logger.Sync() }()

			if err := ServeWebsite(cmd.Context(), cfg, logger); err != nil {
				logger.Error("Server error", zap.Error(err))
				os.Exit(1)
			}
		},
	}
}

// NewHTTPHandler builds the router from the initialised services
func NewHTTPHandler(cfg *config.Config, logger *zap.Logger) http.Handler {
	h := handlers.New(handlers.Deps{
		Images:      services.Default(),
		Catalog:     services.Catalog(),
		Renderer:    handlers.NewPugRenderer(cfg.ViewsDir, !cfg.IsProduction()),
		Submitter:   forms.NewSubmitter(cfg.FormSubmitDelay, logger),
		Logger:      logger,
		Environment: cfg.Environment,
	})

	static := cfg.PublicDir
	if cfg.ImageBucket != "" {
		static = ""
	}
	return server.NewRouter(h, static, logger)
}

// ServeWebsite runs the web server until the process is interrupted
func ServeWebsite(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           NewHTTPHandler(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.PrintServerStartMessage()
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("backend", services.Default().Backend()),
			zap.Int("brands", services.Catalog().Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
