package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// SKU es opcional: vacío significa "sin SKU" y no participa en la deduplicación.
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // único por empresa cuando no es vacío
	Name       string
	Barcode    string
	CategoryID string
	Cost       decimal.Decimal // precio de costo
	Price      decimal.Decimal // precio de venta
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasSKU indica si el producto participa en la unicidad (empresa, sku).
func (p *Product) HasSKU() bool {
	return p.SKU != ""
}
