package main

import (
	"log"

	"github.com/Raj6773/Resume/internal/bootstrap"
	"github.com/Raj6773/Resume/internal/shared/config"
	"github.com/Raj6773/Resume/internal/shared/server"
	"github.com/Raj6773/Resume/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer telemetry.Sync()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":      addr,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
	})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server.stop", map[string]any{"error": err})
		log.Fatalf("server error: %v", err)
	}
}
