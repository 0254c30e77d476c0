package repository

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// SerialRepository define el puerto de persistencia para seriales.
type SerialRepository interface {
	// Create retorna domain.ErrDuplicate si el serial ya existe para el producto.
	Create(ctx context.Context, serial *entity.ProductSerial) error
	ListByLot(ctx context.Context, companyID, lotID string) ([]*entity.ProductSerial, error)
}
