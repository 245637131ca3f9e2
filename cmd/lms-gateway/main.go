package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/router"
	"github.com/openlearn/lms-gateway/internal/service"
	"github.com/openlearn/lms-gateway/internal/upstream"
	"github.com/openlearn/lms-gateway/pkg/config"
	"github.com/openlearn/lms-gateway/pkg/logger"
	"github.com/openlearn/lms-gateway/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	sessions := session.NewManager(cfg.Session, cfg.Env == config.EnvProduction)
	backend := upstream.NewClient(cfg.Backend, logr, metrics)

	r := router.New(router.Deps{
		Config:   cfg,
		Logger:   logr,
		Sessions: sessions,
		Metrics:  metrics,
		Upstream: backend,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "backend", cfg.Backend.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
