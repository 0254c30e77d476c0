package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	LotStatusActive   = "ACTIVE"
	LotStatusDepleted = "DEPLETED"
	LotStatusExpired  = "EXPIRED"
)

// ProductLot es un lote recibido de un producto con fechas de fabricación/vencimiento compartidas.
// InitialQuantity queda fija al crear el lote y coincide con la cantidad del movimiento de entrada;
// CurrentQuantity solo disminuye por consumos posteriores.
type ProductLot struct {
	ID              string
	CompanyID       string
	LotNumber       string
	ProductID       string
	SupplierID      string
	ManufactureDate *time.Time
	ExpirationDate  *time.Time
	InitialQuantity decimal.Decimal
	CurrentQuantity decimal.Decimal
	Status          string
	ReceivedAt      time.Time
}
