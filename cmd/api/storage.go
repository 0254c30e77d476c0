package main

import (
	"context"
	"errors"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/masterdata"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-entries/pkg/config"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

// storage reúne los adaptadores que necesita la API según STORAGE.
type storage struct {
	txRunner  inventory.TxRunner
	suppliers repository.SupplierRepository
	locations repository.LocationRepository
	movements repository.InventoryMovementRepository
	items     repository.InventoryItemRepository
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		return openMemory(ctx, cfg.Storage, log)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	return &storage{
		txRunner:  postgres.NewTxRunner(pool),
		suppliers: postgres.NewSupplierRepository(pool),
		locations: postgres.NewLocationRepository(pool),
		movements: postgres.NewInventoryMovementRepository(pool),
		items:     postgres.NewInventoryItemRepository(pool),
		close:     pool.Close,
	}, nil
}

// openMemory arma el almacén en memoria y carga los maestros de SEED_*.
func openMemory(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*storage, error) {
	store := memory.NewStore()
	st := &storage{
		txRunner:  store,
		suppliers: memory.NewSupplierRepository(store),
		locations: memory.NewLocationRepository(store),
		movements: memory.NewMovementRepository(store),
		items:     memory.NewItemRepository(store),
		close:     func() {},
	}
	if cfg.SeedSuppliers == "" && cfg.SeedLocations == "" {
		log.Warn().Msg("almacenamiento en memoria sin maestros: toda entrada fallará por proveedor o ubicación")
		return st, nil
	}
	if cfg.SeedCompanyID == "" {
		return nil, errors.New("SEED_COMPANY_ID es obligatorio para cargar los maestros")
	}
	im := masterdata.NewImporter(st.suppliers, st.locations, log)
	sup, loc, err := im.ImportFiles(ctx, cfg.SeedCompanyID, cfg.SeedSuppliers, cfg.SeedLocations, cfg.SeedCharset)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("company_id", cfg.SeedCompanyID).
		Int("suppliers", sup.Created).
		Int("locations", loc.Created).
		Msg("maestros cargados en memoria")
	return st, nil
}
