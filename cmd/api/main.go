package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	_ "time/tzdata" // embedded zone data for the location date anchor

	"daycast/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	gin.SetMode(cfg.Server.GinMode)

	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	logger.Info("starting server",
		"addr", cfg.GetServerAddr(),
		"locale", cfg.App.Locale,
		"date_anchor", cfg.App.DateAnchor,
		"upstream", cfg.Upstream.BaseURL,
	)
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
	logger.Info("server stopped")
}
