package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/memory"
)

// seededStore crea un almacén con un proveedor activo y una ubicación para tenantID.
func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, memory.NewSupplierRepository(store).Create(ctx, &entity.Supplier{
		ID: "sup-1", CompanyID: tenantID, NIT: supplierNIT, Name: "Ferretería Central", Active: true,
	}))
	require.NoError(t, memory.NewLocationRepository(store).Create(ctx, &entity.Location{
		ID: "loc-1", CompanyID: tenantID, Name: "Bodega principal",
	}))
	return store
}

func storeUseCase(store *memory.Store) *inventory.CreateInventoryEntryUseCase {
	return inventory.NewCreateInventoryEntryUseCase(
		store,
		inventory.NewSupplierResolver(memory.NewSupplierRepository(store)),
		memory.NewLocationRepository(store),
		inventory.EntryOptions{},
		nil,
	)
}

func TestEntryStore_PersistsEverything(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uc := storeUseCase(store)

	req := validRequest()
	req.Movement.Quantity = decimal.NewFromInt(5)
	req.Serials = []string{"SN-1", "SN-2"}
	resp, err := uc.CreateInventoryEntry(ctx, tenantID, req)
	require.NoError(t, err)
	assert.True(t, resp.ProductCreated)

	stats := store.Stats()
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 1, stats.Lots)
	assert.Equal(t, 2, stats.Serials)
	assert.Equal(t, 1, stats.Movements)

	lot, err := memory.NewLotRepository(store).GetByID(ctx, resp.LotID)
	require.NoError(t, err)
	assert.True(t, lot.InitialQuantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, lot.CurrentQuantity.Equal(lot.InitialQuantity))
	assert.Equal(t, entity.LotStatusActive, lot.Status)
	assert.Equal(t, "sup-1", lot.SupplierID)

	mov, err := memory.NewMovementRepository(store).GetByID(ctx, resp.MovementID)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, resp.EntryID, mov.TransactionID)
	assert.Equal(t, "L-2024-01", mov.Reference)
	assert.Len(t, mov.SerialIDs, 2)

	serials, err := memory.NewSerialRepository(store).ListByLot(ctx, tenantID, resp.LotID)
	require.NoError(t, err)
	require.Len(t, serials, 2)
	assert.Equal(t, entity.SerialStatusInStock, serials[0].Status)

	// 1 unidad por serial y 3 a nivel de lote.
	items, err := inventory.NewStockProjectionUseCase(memory.NewMovementRepository(store), memory.NewItemRepository(store)).
		ListItems(ctx, tenantID, resp.ProductID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(5)))
}

func TestEntryStore_SecondEntryReusesProduct(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uc := storeUseCase(store)

	first, err := uc.CreateInventoryEntry(ctx, tenantID, validRequest())
	require.NoError(t, err)
	req := validRequest()
	req.Lot.LotNumber = "L-2024-02"
	second, err := uc.CreateInventoryEntry(ctx, tenantID, req)
	require.NoError(t, err)

	assert.Equal(t, first.ProductID, second.ProductID)
	assert.False(t, second.ProductCreated)
	assert.NotEqual(t, first.LotID, second.LotID)
	assert.Equal(t, 1, store.Stats().Products)
	assert.Equal(t, 2, store.Stats().Lots)
}

func TestEntryStore_DuplicateSerialLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uc := storeUseCase(store)

	req := validRequest()
	req.Movement.Quantity = decimal.NewFromInt(2)
	req.Serials = []string{"SN-1", "SN-2"}
	_, err := uc.CreateInventoryEntry(ctx, tenantID, req)
	require.NoError(t, err)
	before := store.Stats()

	// SN-2 ya existe para el producto: nada de la segunda entrada debe persistir.
	req.Lot.LotNumber = "L-2024-02"
	req.Serials = []string{"SN-3", "SN-2"}
	_, err = uc.CreateInventoryEntry(ctx, tenantID, req)
	require.ErrorIs(t, err, domain.ErrSerialCreationFailed)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, before, store.Stats())
}

func TestEntryStore_NewProductRolledBackWhenMovementFails(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	failing := &mockMovements{}
	failing.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("libro no disponible")).Once()
	uc := storeUseCase(store).WithServiceFactory(func(repos inventory.TxRepositories) inventory.EntryServices {
		svc := inventory.NewEntryServices(repos)
		svc.Movements = failing
		return svc
	})

	req := validRequest()
	req.Movement.Quantity = decimal.NewFromInt(2)
	req.Serials = []string{"SN-1", "SN-2"}
	_, err := uc.CreateInventoryEntry(ctx, tenantID, req)
	require.ErrorIs(t, err, domain.ErrMovementRecordingFailed)

	stats := store.Stats()
	assert.Zero(t, stats.Products)
	assert.Zero(t, stats.Lots)
	assert.Zero(t, stats.Serials)
	assert.Zero(t, stats.Movements)
	assert.Zero(t, stats.Items)
	failing.AssertExpectations(t)
}

func TestEntryStore_ConcurrentSameSKUCreatesOneProduct(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uc := storeUseCase(store)

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.Product.SKU = "SKU-RACE"
			req.Lot.LotNumber = fmt.Sprintf("L-%d", i)
			resp, err := uc.CreateInventoryEntry(ctx, tenantID, req)
			errs[i] = err
			if resp != nil {
				results[i] = resp.ProductID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, 1, store.Stats().Products)
	assert.Equal(t, n, store.Stats().Lots)
}

func TestEntryStore_ReconcileBalanced(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	uc := storeUseCase(store)
	projection := inventory.NewStockProjectionUseCase(memory.NewMovementRepository(store), memory.NewItemRepository(store))

	var productID string
	for i, serials := range [][]string{nil, {"A", "B"}, {"C"}} {
		req := validRequest()
		req.Lot.LotNumber = fmt.Sprintf("L-%d", i)
		req.Movement.Quantity = decimal.NewFromInt(4)
		req.Serials = serials
		resp, err := uc.CreateInventoryEntry(ctx, tenantID, req)
		require.NoError(t, err)
		productID = resp.ProductID
	}

	report, err := projection.Reconcile(ctx, tenantID, productID)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
	assert.Equal(t, 3, report.MovementCount)
	assert.Empty(t, report.Diffs)

	// Una existencia alterada por fuera del libro aparece como diferencia.
	require.NoError(t, memory.NewItemRepository(store).Apply(ctx, &entity.InventoryItem{
		CompanyID: tenantID, ProductID: productID, LocationID: "loc-1", Quantity: decimal.NewFromInt(1),
	}))
	report, err = projection.Reconcile(ctx, tenantID, productID)
	require.NoError(t, err)
	assert.False(t, report.Balanced)
	require.Len(t, report.Diffs, 1)
	assert.True(t, report.Diffs[0].Stored.Equal(decimal.NewFromInt(1)))
	assert.True(t, report.Diffs[0].Projected.IsZero())
}

func TestStockProjection_RequiresTenantAndProduct(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewStockProjectionUseCase(memory.NewMovementRepository(store), memory.NewItemRepository(store))

	_, err := uc.ListItems(context.Background(), "", "p1")
	assert.ErrorIs(t, err, domain.ErrTenantMissing)
	_, err = uc.Reconcile(context.Background(), tenantID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
