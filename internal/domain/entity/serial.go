package entity

import "time"

// Estados de un serial.
const (
	SerialStatusInStock  = "IN_STOCK"
	SerialStatusConsumed = "CONSUMED"
	SerialStatusSold     = "SOLD"
)

// ProductSerial identifica una unidad individual de un producto (único por producto).
type ProductSerial struct {
	ID           string
	CompanyID    string
	SerialNumber string
	ProductID    string
	LotID        string
	Status       string
	ReceivedAt   time.Time
}
