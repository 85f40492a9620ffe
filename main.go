package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/qa-service/handlers"
	"github.com/gogotex/qa-service/internal/config"
	"github.com/gogotex/qa-service/internal/qa/graph"
	"github.com/gogotex/qa-service/internal/qa/service"
	"github.com/gogotex/qa-service/internal/store"
	"github.com/gogotex/qa-service/pkg/logger"
	"github.com/gogotex/qa-service/pkg/metrics"
	"github.com/gogotex/qa-service/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startTime = time.Now()

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.Level != "" {
		logger.Init(cfg.Log.Level)
	}
	logger.Debugf("startup: LOG_LEVEL=%s backend=%s", logger.LevelString(), cfg.Store.Backend)

	if strings.EqualFold(cfg.Server.Environment, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	schema, err := graph.NewSchema(service.NewService(st), graph.Config{
		MaxDepth:       cfg.GraphQL.MaxDepth,
		MaxParallelism: cfg.GraphQL.MaxParallelism,
	})
	if err != nil {
		logger.Errorf("failed to build GraphQL schema: %v", err)
		exitCode = 1
		return
	}

	r := gin.New()
	r.Use(middleware.Observe(), middleware.CORS(), gin.Recovery())

	handlers.RegisterHello(r)
	handlers.RegisterHealth(r, startTime, cfg.Store.Backend, func(ctx context.Context) map[string]bool {
		return map[string]bool{"store": store.Ping(ctx, st) == nil}
	})
	graph.RegisterRoutes(r, schema)
	if cfg.GraphQL.Playground {
		handlers.RegisterPlayground(r, "/graphql")
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Infof("Starting qa service on %s", srv.Addr)
	if err := serve(ctx, srv, 10*time.Second); err != nil {
		logger.Errorf("server failed: %v", err)
		exitCode = 1
	}
}

// serve runs srv until ctx is done or the listener fails, then shuts it down
// within grace. A listener failure is returned; a clean shutdown returns nil.
func serve(ctx context.Context, srv *http.Server, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
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
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
