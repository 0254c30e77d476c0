package dto

import "github.com/shopspring/decimal"

// CreateInventoryEntryRequest body para POST /api/inventory/entries.
// Las fechas aceptan "2006-01-02" o RFC 3339.
type CreateInventoryEntryRequest struct {
	Product     EntryProductRequest  `json:"product"`
	SupplierNIT string               `json:"supplier_nit" validate:"required,max=32"`
	Lot         EntryLotRequest      `json:"lot"`
	LocationID  string               `json:"location_id" validate:"required,max=64"`
	Movement    EntryMovementRequest `json:"movement"`
	Serials     []string             `json:"serials,omitempty" validate:"omitempty,unique,dive,required,max=100"`
}

// EntryProductRequest descriptor del producto recibido. Sin SKU siempre se crea un producto nuevo.
type EntryProductRequest struct {
	SKU        string           `json:"sku,omitempty" validate:"max=64"`
	Name       string           `json:"name" validate:"required,max=200"`
	Barcode    string           `json:"barcode" validate:"max=64"`
	CategoryID string           `json:"category_id" validate:"max=64"`
	CostPrice  *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice  *decimal.Decimal `json:"sale_price,omitempty"`
}

// EntryLotRequest descriptor del lote. InitialQuantity es informativo: el lote siempre
// nace con la cantidad del movimiento.
type EntryLotRequest struct {
	LotNumber       string          `json:"lot_number" validate:"required,max=64"`
	ManufactureDate string          `json:"manufacture_date,omitempty"`
	ExpirationDate  string          `json:"expiration_date,omitempty"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
}

// EntryMovementRequest descriptor del movimiento de entrada.
type EntryMovementRequest struct {
	MovementType string          `json:"movement_type,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UserID       string          `json:"user_id" validate:"required,max=64"`
	MovementDate string          `json:"movement_date,omitempty"`
}

// InventoryEntryResponse confirmación de la entrada registrada.
type InventoryEntryResponse struct {
	Message        string `json:"message"`
	EntryID        string `json:"entry_id,omitempty"`
	ProductID      string `json:"product_id,omitempty"`
	ProductCreated bool   `json:"product_created"`
	LotID          string `json:"lot_id,omitempty"`
	MovementID     string `json:"movement_id,omitempty"`
}
