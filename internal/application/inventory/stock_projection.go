package inventory

import (
	"context"

	"github.com/jhoicas/inventory-entries/internal/application/dto"
	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	domaininv "github.com/jhoicas/inventory-entries/internal/domain/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

// StockProjectionUseCase consulta existencias y las contrasta con el libro de movimientos.
type StockProjectionUseCase struct {
	movRepo  repository.InventoryMovementRepository
	itemRepo repository.InventoryItemRepository
}

// NewStockProjectionUseCase construye el caso de uso.
func NewStockProjectionUseCase(movRepo repository.InventoryMovementRepository, itemRepo repository.InventoryItemRepository) *StockProjectionUseCase {
	return &StockProjectionUseCase{movRepo: movRepo, itemRepo: itemRepo}
}

// ListItems devuelve las existencias almacenadas de un producto.
func (uc *StockProjectionUseCase) ListItems(ctx context.Context, tenantID, productID string) ([]dto.InventoryItemDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantMissing
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	domaininv.SortItems(items)
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// Reconcile reproduce el libro del producto y lo compara con las existencias almacenadas.
func (uc *StockProjectionUseCase) Reconcile(ctx context.Context, tenantID, productID string) (*dto.ReconciliationReport, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantMissing
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.movRepo.ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	stored, err := uc.itemRepo.ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	diffs := domaininv.Diff(stored, domaininv.Project(movs))
	report := &dto.ReconciliationReport{
		ProductID:     productID,
		MovementCount: len(movs),
		Balanced:      len(diffs) == 0,
		Diffs:         make([]dto.ItemDiffDTO, 0, len(diffs)),
	}
	for _, d := range diffs {
		report.Diffs = append(report.Diffs, dto.ItemDiffDTO{
			LocationID: d.Key.LocationID,
			VariantID:  d.Key.VariantID,
			LotID:      d.Key.LotID,
			SerialID:   d.Key.SerialID,
			Stored:     d.Stored,
			Projected:  d.Projected,
		})
	}
	return report, nil
}

func toItemDTO(it *entity.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ProductID:  it.ProductID,
		VariantID:  it.VariantID,
		LocationID: it.LocationID,
		LotID:      it.LotID,
		SerialID:   it.SerialID,
		Quantity:   it.Quantity,
		UpdatedAt:  it.UpdatedAt,
	}
}
