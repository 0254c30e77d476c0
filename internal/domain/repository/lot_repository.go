package repository

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes de producto.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.ProductLot) error
	GetByID(ctx context.Context, id string) (*entity.ProductLot, error)
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.ProductLot, error)
}
