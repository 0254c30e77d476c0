package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	httpRouter "github.com/jhoicas/inventory-entries/internal/interfaces/http"
	"github.com/jhoicas/inventory-entries/pkg/config"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer st.close()
	log.Info().Str("storage", cfg.Storage.Driver).Msg("almacenamiento listo")

	createEntryUC := inventory.NewCreateInventoryEntryUseCase(
		st.txRunner,
		inventory.NewSupplierResolver(st.suppliers),
		st.locations,
		inventory.EntryOptions{EnforceSerialCount: cfg.Entry.EnforceSerialCount},
		log,
	)
	projectionUC := inventory.NewStockProjectionUseCase(st.movements, st.items)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Entries API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateEntry:  createEntryUC,
		Projection:   projectionUC,
		TenantHeader: cfg.HTTP.TenantHeader,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
