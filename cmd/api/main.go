package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	_ "propostas_api/docs"
	"propostas_api/internal/adapter/http/routes"
	"propostas_api/internal/config"
	"propostas_api/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Propostas API
// @version         1.0
// @description     Commercial proposals: catalog, cart pricing, status lifecycle and PDF export.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.LevelFromString(cfg.LogLevel))

	if err := routes.Run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
