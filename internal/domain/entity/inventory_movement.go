package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
)

// InventoryMovement es un registro inmutable del libro de movimientos.
// Nunca se actualiza ni se elimina: es la fuente de verdad de las cantidades.
type InventoryMovement struct {
	ID            string
	CompanyID     string
	TransactionID string // agrupa los registros de una misma operación (ej. la entrada)
	Type          string
	ProductID     string
	LotID         string
	SerialIDs     []string
	ToLocationID  string
	Quantity      decimal.Decimal // positivo entrada/ajuste+, negativo salida
	Reference     string
	MovementDate  time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
