package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemDTO existencia proyectada por (producto, variante, ubicación, lote, serial).
type InventoryItemDTO struct {
	ProductID  string          `json:"product_id"`
	VariantID  string          `json:"variant_id,omitempty"`
	LocationID string          `json:"location_id"`
	LotID      string          `json:"lot_id,omitempty"`
	SerialID   string          `json:"serial_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ItemDiffDTO diferencia entre la existencia almacenada y la reconstruida desde el libro.
type ItemDiffDTO struct {
	LocationID string          `json:"location_id"`
	VariantID  string          `json:"variant_id,omitempty"`
	LotID      string          `json:"lot_id,omitempty"`
	SerialID   string          `json:"serial_id,omitempty"`
	Stored     decimal.Decimal `json:"stored"`
	Projected  decimal.Decimal `json:"projected"`
}

// ReconciliationReport resultado de reproducir el libro de movimientos de un producto.
type ReconciliationReport struct {
	ProductID     string        `json:"product_id"`
	MovementCount int           `json:"movement_count"`
	Balanced      bool          `json:"balanced"`
	Diffs         []ItemDiffDTO `json:"diffs"`
}
