package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/qa-service/handlers"
	"github.com/gogotex/qa-service/internal/config"
	"github.com/gogotex/qa-service/pkg/logger"
	"github.com/gogotex/qa-service/pkg/middleware"
)

// Plain REST variant: a single placeholder endpoint, no store.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()
	r.Use(middleware.Observe(), gin.Recovery())
	handlers.RegisterHello(r)

	logger.Infof("hello service listening on %s", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
