package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/powerfrill/showcase-backend-go/internal/api"
	"github.com/powerfrill/showcase-backend-go/internal/middleware"
	"github.com/powerfrill/showcase-backend-go/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	choreo, err := service.NewChoreographyService(app.Index, app.Choreography)
	if err != nil {
		return err
	}

	if cfg.Logging.Level != "debug" && !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := api.Dependencies{
		Logger:       logger,
		Catalog:      service.NewCatalogService(app.Index),
		Choreography: choreo,
	}
	if cfg.Server.RateLimit > 0 {
		deps.Limiter = middleware.NewRateLimiter(ctx, cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: api.SetupRouter(deps),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("preset", app.Choreography.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
