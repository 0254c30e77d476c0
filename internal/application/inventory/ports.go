package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRepositories repositorios atados a una misma transacción de BD.
type TxRepositories struct {
	Products  repository.ProductRepository
	Lots      repository.LotRepository
	Serials   repository.SerialRepository
	Movements repository.InventoryMovementRepository
	Items     repository.InventoryItemRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepositories) error) error
}

// SuppliersService resuelve proveedores por NIT dentro de una empresa.
type SuppliersService interface {
	// FindByTaxID retorna (nil, nil) si no existe proveedor con ese NIT en la empresa.
	FindByTaxID(ctx context.Context, taxID, tenantID string) (*entity.Supplier, error)
}

// ProductsService busca y crea productos.
type ProductsService interface {
	// FindBySKU retorna (nil, nil) si no existe.
	FindBySKU(ctx context.Context, tenantID, sku string) (*entity.Product, error)
	// Create retorna domain.ErrDuplicate si otro escritor creó el mismo SKU.
	Create(ctx context.Context, tenantID string, desc ProductDescriptor) (*entity.Product, error)
}

// InventoryService registra lotes y seriales.
type InventoryService interface {
	CreateLot(ctx context.Context, payload LotPayload) (*entity.ProductLot, error)
	CreateSerial(ctx context.Context, tenantID, serialNumber, productID, lotID string) (*entity.ProductSerial, error)
}

// MovementsService agrega movimientos al libro.
type MovementsService interface {
	Create(ctx context.Context, payload MovementPayload) (*entity.InventoryMovement, error)
}

// EntryServices colaboradores que escriben dentro de la transacción de la entrada.
type EntryServices struct {
	Products  ProductsService
	Inventory InventoryService
	Movements MovementsService
}

// NewEntryServices construye los colaboradores sobre repositorios transaccionales.
func NewEntryServices(repos TxRepositories) EntryServices {
	return EntryServices{
		Products:  NewProductResolver(repos.Products),
		Inventory: NewInventoryRegistrar(NewLotRegistrar(repos.Lots), NewSerialRegistrar(repos.Serials)),
		Movements: NewMovementLedger(repos.Movements, repos.Items),
	}
}

// ProductDescriptor datos para crear un producto.
type ProductDescriptor struct {
	SKU        string
	Name       string
	Barcode    string
	CategoryID string
	Cost       decimal.Decimal
	Price      decimal.Decimal
}

// LotPayload lo arma el orquestador: InitialQuantity siempre es la cantidad del movimiento.
type LotPayload struct {
	TenantID        string
	LotNumber       string
	ProductID       string
	SupplierID      string
	ManufactureDate *time.Time
	ExpirationDate  *time.Time
	InitialQuantity decimal.Decimal
}

// MovementPayload datos del movimiento a agregar al libro.
type MovementPayload struct {
	TenantID      string
	TransactionID string
	Type          string
	ProductID     string
	LotID         string
	SerialIDs     []string
	ToLocationID  string
	Quantity      decimal.Decimal
	UserID        string
	MovementDate  time.Time
	Reference     string
}
