package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

// LotRegistrar crea lotes de producto.
type LotRegistrar struct {
	lotRepo repository.LotRepository
}

// NewLotRegistrar construye el registrador de lotes.
func NewLotRegistrar(lotRepo repository.LotRepository) *LotRegistrar {
	return &LotRegistrar{lotRepo: lotRepo}
}

// CreateLot crea el lote ACTIVE con cantidad actual igual a la inicial.
func (r *LotRegistrar) CreateLot(ctx context.Context, payload LotPayload) (*entity.ProductLot, error) {
	if payload.TenantID == "" || payload.ProductID == "" || payload.SupplierID == "" || payload.LotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if !payload.InitialQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	lot := &entity.ProductLot{
		ID:              uuid.New().String(),
		CompanyID:       payload.TenantID,
		LotNumber:       payload.LotNumber,
		ProductID:       payload.ProductID,
		SupplierID:      payload.SupplierID,
		ManufactureDate: payload.ManufactureDate,
		ExpirationDate:  payload.ExpirationDate,
		InitialQuantity: payload.InitialQuantity,
		CurrentQuantity: payload.InitialQuantity,
		Status:          entity.LotStatusActive,
		ReceivedAt:      time.Now(),
	}
	if err := r.lotRepo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// SerialRegistrar crea seriales ligados a un lote.
type SerialRegistrar struct {
	serialRepo repository.SerialRepository
}

// NewSerialRegistrar construye el registrador de seriales.
func NewSerialRegistrar(serialRepo repository.SerialRepository) *SerialRegistrar {
	return &SerialRegistrar{serialRepo: serialRepo}
}

// CreateSerial crea el serial en estado IN_STOCK. Propaga domain.ErrDuplicate.
func (r *SerialRegistrar) CreateSerial(ctx context.Context, tenantID, serialNumber, productID, lotID string) (*entity.ProductSerial, error) {
	serialNumber = normalizeCode(serialNumber)
	if tenantID == "" || serialNumber == "" || productID == "" || lotID == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.ProductSerial{
		ID:           uuid.New().String(),
		CompanyID:    tenantID,
		SerialNumber: serialNumber,
		ProductID:    productID,
		LotID:        lotID,
		Status:       entity.SerialStatusInStock,
		ReceivedAt:   time.Now(),
	}
	if err := r.serialRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// InventoryRegistrar reúne lotes y seriales detrás de InventoryService.
type InventoryRegistrar struct {
	*LotRegistrar
	*SerialRegistrar
}

// NewInventoryRegistrar construye el registrador compuesto.
func NewInventoryRegistrar(lots *LotRegistrar, serials *SerialRegistrar) *InventoryRegistrar {
	return &InventoryRegistrar{LotRegistrar: lots, SerialRegistrar: serials}
}
