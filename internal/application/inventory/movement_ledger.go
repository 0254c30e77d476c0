package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	domaininv "github.com/jhoicas/inventory-entries/internal/domain/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

// MovementLedger agrega movimientos al libro y actualiza la proyección de existencias
// en la misma transacción.
type MovementLedger struct {
	movRepo  repository.InventoryMovementRepository
	itemRepo repository.InventoryItemRepository
}

// NewMovementLedger construye el libro.
func NewMovementLedger(movRepo repository.InventoryMovementRepository, itemRepo repository.InventoryItemRepository) *MovementLedger {
	return &MovementLedger{movRepo: movRepo, itemRepo: itemRepo}
}

// Create guarda el movimiento y aplica sus deltas sobre inventory_items.
func (l *MovementLedger) Create(ctx context.Context, payload MovementPayload) (*entity.InventoryMovement, error) {
	if payload.TenantID == "" || payload.ProductID == "" || payload.ToLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if payload.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	switch payload.Type {
	case entity.MovementTypeIN:
		if !payload.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeOUT, entity.MovementTypeADJUSTMENT, entity.MovementTypeTRANSFER:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	movDate := payload.MovementDate
	if movDate.IsZero() {
		movDate = now
	}
	mov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		CompanyID:     payload.TenantID,
		TransactionID: payload.TransactionID,
		Type:          payload.Type,
		ProductID:     payload.ProductID,
		LotID:         payload.LotID,
		SerialIDs:     append([]string(nil), payload.SerialIDs...),
		ToLocationID:  payload.ToLocationID,
		Quantity:      payload.Quantity,
		Reference:     payload.Reference,
		MovementDate:  movDate,
		CreatedAt:     now,
		CreatedBy:     payload.UserID,
	}
	if err := l.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	for _, d := range domaininv.MovementDeltas(mov) {
		if err := l.itemRepo.Apply(ctx, d); err != nil {
			return nil, fmt.Errorf("actualizar existencias: %w", err)
		}
	}
	return mov, nil
}
