package inventory

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
	"github.com/jhoicas/inventory-entries/pkg/dian"
)

// SupplierResolver resuelve proveedores por NIT sin salir de la empresa.
type SupplierResolver struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierResolver construye el resolvedor.
func NewSupplierResolver(supplierRepo repository.SupplierRepository) *SupplierResolver {
	return &SupplierResolver{supplierRepo: supplierRepo}
}

// FindByTaxID normaliza el NIT y lo busca en la empresa. Un NIT de 9 dígitos se completa
// con su dígito de verificación. (nil, nil) si no existe.
func (r *SupplierResolver) FindByTaxID(ctx context.Context, taxID, tenantID string) (*entity.Supplier, error) {
	nit := dian.CompleteNIT(taxID)
	if nit == "" || tenantID == "" {
		return nil, nil
	}
	s, err := r.supplierRepo.GetByCompanyAndNIT(ctx, tenantID, nit)
	if err != nil {
		return nil, err
	}
	if s == nil || s.CompanyID != tenantID {
		return nil, nil
	}
	return s, nil
}
