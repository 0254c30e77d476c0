package repository

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// InventoryItemRepository define el puerto de la proyección de existencias.
type InventoryItemRepository interface {
	// Apply suma delta.Quantity al ítem con la misma llave (lo crea si no existe).
	Apply(ctx context.Context, delta *entity.InventoryItem) error
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryItem, error)
}
