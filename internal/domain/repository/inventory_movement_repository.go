package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// InventoryMovementRepository define el puerto del libro de movimientos.
// Solo agrega: no existe Update ni Delete.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error)
	// ListByProduct devuelve los movimientos en orden cronológico (fecha, creación).
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryMovement, error)
	ListByLocation(ctx context.Context, companyID, locationID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
