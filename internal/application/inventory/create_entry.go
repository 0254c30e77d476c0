package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-entries/internal/application/dto"
	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

// EntryRegisteredMessage mensaje de confirmación de una entrada registrada.
const EntryRegisteredMessage = "entrada de inventario registrada"

// CreateInventoryEntryUseCase registra la recepción de mercancía: resuelve proveedor y ubicación,
// y dentro de una sola transacción resuelve/crea el producto, crea lote y seriales y agrega
// el movimiento IN. Si un paso falla no queda nada persistido.
type CreateInventoryEntryUseCase struct {
	txRunner     TxRunner
	suppliers    SuppliersService
	locationRepo repository.LocationRepository
	newServices  func(repos TxRepositories) EntryServices
	opts         EntryOptions
	log          *logger.Logger
	now          func() time.Time
}

// NewCreateInventoryEntryUseCase construye el caso de uso. log puede ser nil.
func NewCreateInventoryEntryUseCase(
	txRunner TxRunner,
	suppliers SuppliersService,
	locationRepo repository.LocationRepository,
	opts EntryOptions,
	log *logger.Logger,
) *CreateInventoryEntryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateInventoryEntryUseCase{
		txRunner:     txRunner,
		suppliers:    suppliers,
		locationRepo: locationRepo,
		newServices:  NewEntryServices,
		opts:         opts,
		log:          log.Named("inventory_entry"),
		now:          time.Now,
	}
}

// WithServiceFactory reemplaza la construcción de colaboradores transaccionales (tests).
func (uc *CreateInventoryEntryUseCase) WithServiceFactory(f func(repos TxRepositories) EntryServices) *CreateInventoryEntryUseCase {
	uc.newServices = f
	return uc
}

// CreateInventoryEntry ejecuta la entrada. Los errores se comparan con los sentinelas de domain:
// ErrValidationFailed, ErrSupplierNotFound, ErrSupplierInactive, ErrLocationNotFound,
// ErrProductCreationFailed, ErrLotCreationFailed, ErrSerialCreationFailed, ErrMovementRecordingFailed.
func (uc *CreateInventoryEntryUseCase) CreateInventoryEntry(ctx context.Context, tenantID string, in dto.CreateInventoryEntryRequest) (*dto.InventoryEntryResponse, error) {
	entry, err := ParseInventoryEntry(tenantID, in, uc.opts, uc.now())
	if err != nil {
		return nil, err
	}
	entryID := uuid.New().String()
	log := uc.log.With().Str("tenant_id", entry.TenantID).Str("entry_id", entryID).Logger()

	supplier, err := uc.suppliers.FindByTaxID(ctx, entry.SupplierNIT, entry.TenantID)
	if err != nil {
		return nil, fmt.Errorf("buscar proveedor: %w", err)
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if !supplier.Active {
		return nil, domain.ErrSupplierInactive
	}

	loc, err := uc.locationRepo.GetByID(ctx, entry.LocationID)
	if err != nil {
		return nil, fmt.Errorf("buscar ubicación: %w", err)
	}
	if loc == nil || loc.CompanyID != entry.TenantID {
		return nil, domain.ErrLocationNotFound
	}

	if d := entry.Lot.DeclaredQuantity; !d.IsZero() && !d.Equal(entry.Quantity) {
		log.Warn().
			Str("declared", d.String()).
			Str("quantity", entry.Quantity.String()).
			Msg("cantidad inicial del lote ignorada; se usa la del movimiento")
	}

	var resp *dto.InventoryEntryResponse
	err = uc.txRunner.Run(ctx, func(repos TxRepositories) error {
		svc := uc.newServices(repos)

		product, created, err := uc.resolveProduct(ctx, svc.Products, entry)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrProductCreationFailed, err)
		}

		lot, err := svc.Inventory.CreateLot(ctx, LotPayload{
			TenantID:        entry.TenantID,
			LotNumber:       entry.Lot.LotNumber,
			ProductID:       product.ID,
			SupplierID:      supplier.ID,
			ManufactureDate: entry.Lot.ManufactureDate,
			ExpirationDate:  entry.Lot.ExpirationDate,
			InitialQuantity: entry.Quantity,
		})
		if err == nil && lot == nil {
			err = errors.New("lote vacío")
		}
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrLotCreationFailed, err)
		}

		serialIDs := make([]string, 0, len(entry.Serials))
		for _, sn := range entry.Serials {
			s, err := svc.Inventory.CreateSerial(ctx, entry.TenantID, sn, product.ID, lot.ID)
			if err == nil && s == nil {
				err = errors.New("serial vacío")
			}
			if err != nil {
				return fmt.Errorf("%w: serial %q: %w", domain.ErrSerialCreationFailed, sn, err)
			}
			serialIDs = append(serialIDs, s.ID)
		}

		mov, err := svc.Movements.Create(ctx, MovementPayload{
			TenantID:      entry.TenantID,
			TransactionID: entryID,
			Type:          entity.MovementTypeIN,
			ProductID:     product.ID,
			LotID:         lot.ID,
			SerialIDs:     serialIDs,
			ToLocationID:  loc.ID,
			Quantity:      entry.Quantity,
			UserID:        entry.UserID,
			MovementDate:  entry.MovementDate,
			Reference:     lot.LotNumber,
		})
		if err == nil && mov == nil {
			err = errors.New("movimiento vacío")
		}
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrMovementRecordingFailed, err)
		}

		resp = &dto.InventoryEntryResponse{
			Message:        EntryRegisteredMessage,
			EntryID:        entryID,
			ProductID:      product.ID,
			ProductCreated: created,
			LotID:          lot.ID,
			MovementID:     mov.ID,
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("step", failedStep(err)).Msg("entrada de inventario revertida")
		return nil, err
	}

	log.Info().
		Str("product_id", resp.ProductID).
		Str("lot_id", resp.LotID).
		Str("movement_id", resp.MovementID).
		Int("serials", len(entry.Serials)).
		Msg(EntryRegisteredMessage)
	return resp, nil
}

// resolveProduct devuelve el producto y si fue creado en esta entrada. Si otro escritor crea el
// mismo SKU entre la búsqueda y la inserción, se reintenta una vez como búsqueda.
func (uc *CreateInventoryEntryUseCase) resolveProduct(ctx context.Context, products ProductsService, entry *ValidatedEntry) (*entity.Product, bool, error) {
	sku := entry.Product.SKU
	if sku != "" {
		existing, err := products.FindBySKU(ctx, entry.TenantID, sku)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	created, err := products.Create(ctx, entry.TenantID, entry.Product)
	if sku != "" && errors.Is(err, domain.ErrDuplicate) {
		uc.log.Warn().Str("tenant_id", entry.TenantID).Str("sku", sku).Msg("SKU creado en paralelo; se reutiliza el existente")
		existing, err := products.FindBySKU(ctx, entry.TenantID, sku)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, fmt.Errorf("sku %q: %w", sku, domain.ErrConflict)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if created == nil {
		return nil, false, errors.New("producto vacío")
	}
	return created, true, nil
}

// failedStep nombra el paso de la transacción que falló, para los logs.
func failedStep(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductCreationFailed):
		return "product"
	case errors.Is(err, domain.ErrLotCreationFailed):
		return "lot"
	case errors.Is(err, domain.ErrSerialCreationFailed):
		return "serial"
	case errors.Is(err, domain.ErrMovementRecordingFailed):
		return "movement"
	default:
		return "commit"
	}
}
