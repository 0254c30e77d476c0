// migrate aplica el esquema de entradas de inventario.
//
// Uso: go run ./cmd/migrate [up|down]
package main

import (
	"os"

	"github.com/jhoicas/inventory-entries/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-entries/pkg/config"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("migrate")

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if err := postgres.Migrate(cfg.DB.ConnectionString(), direction, log); err != nil {
		log.Fatal().Err(err).Msg("migración fallida")
	}
}
