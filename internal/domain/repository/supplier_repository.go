package repository

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	// GetByCompanyAndNIT devuelve (nil, nil) si no existe. Nunca resuelve entre empresas.
	GetByCompanyAndNIT(ctx context.Context, companyID, nit string) (*entity.Supplier, error)
}
