package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

// ProductResolver busca productos por SKU y crea los que faltan.
type ProductResolver struct {
	productRepo repository.ProductRepository
}

// NewProductResolver construye el resolvedor.
func NewProductResolver(productRepo repository.ProductRepository) *ProductResolver {
	return &ProductResolver{productRepo: productRepo}
}

// FindBySKU busca el SKU dentro de la empresa. Un SKU vacío nunca coincide.
func (r *ProductResolver) FindBySKU(ctx context.Context, tenantID, sku string) (*entity.Product, error) {
	sku = normalizeCode(sku)
	if sku == "" {
		return nil, nil
	}
	return r.productRepo.GetByCompanyAndSKU(ctx, tenantID, sku)
}

// Create inserta un producto nuevo. Propaga domain.ErrDuplicate si el SKU ya existe.
func (r *ProductResolver) Create(ctx context.Context, tenantID string, desc ProductDescriptor) (*entity.Product, error) {
	if tenantID == "" || desc.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:         uuid.New().String(),
		CompanyID:  tenantID,
		SKU:        normalizeCode(desc.SKU),
		Name:       desc.Name,
		Barcode:    desc.Barcode,
		CategoryID: desc.CategoryID,
		Cost:       desc.Cost,
		Price:      desc.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
