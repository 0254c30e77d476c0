package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateEntry  *inventory.CreateInventoryEntryUseCase
	Projection   *inventory.StockProjectionUseCase
	TenantHeader string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", TenantContext(deps.TenantHeader))

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.CreateEntry, deps.Projection)
	invGroup.Post("/entries", inventoryHandler.CreateEntry)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Get("/items/reconcile", inventoryHandler.Reconcile)
}
