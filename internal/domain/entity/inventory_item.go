package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem es la existencia agregada por (producto, variante, ubicación, lote, serial).
// Es una proyección de los movimientos; siempre debe poder reconstruirse reproduciéndolos.
type InventoryItem struct {
	CompanyID  string
	ProductID  string
	VariantID  string
	LocationID string
	LotID      string
	SerialID   string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

// ItemKey es la llave natural de un InventoryItem dentro de una empresa.
type ItemKey struct {
	ProductID  string
	VariantID  string
	LocationID string
	LotID      string
	SerialID   string
}

// Key devuelve la llave natural del ítem.
func (i *InventoryItem) Key() ItemKey {
	return ItemKey{
		ProductID:  i.ProductID,
		VariantID:  i.VariantID,
		LocationID: i.LocationID,
		LotID:      i.LotID,
		SerialID:   i.SerialID,
	}
}
