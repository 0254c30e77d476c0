package inventory_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

type mockSuppliers struct{ mock.Mock }

func (m *mockSuppliers) FindByTaxID(ctx context.Context, taxID, tenantID string) (*entity.Supplier, error) {
	args := m.Called(ctx, taxID, tenantID)
	s, _ := args.Get(0).(*entity.Supplier)
	return s, args.Error(1)
}

type mockLocations struct{ mock.Mock }

func (m *mockLocations) Create(ctx context.Context, loc *entity.Location) error {
	return m.Called(ctx, loc).Error(0)
}

func (m *mockLocations) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*entity.Location)
	return l, args.Error(1)
}

type mockProducts struct{ mock.Mock }

func (m *mockProducts) FindBySKU(ctx context.Context, tenantID, sku string) (*entity.Product, error) {
	args := m.Called(ctx, tenantID, sku)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProducts) Create(ctx context.Context, tenantID string, desc inventory.ProductDescriptor) (*entity.Product, error) {
	args := m.Called(ctx, tenantID, desc)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

type mockInventory struct{ mock.Mock }

func (m *mockInventory) CreateLot(ctx context.Context, payload inventory.LotPayload) (*entity.ProductLot, error) {
	args := m.Called(ctx, payload)
	l, _ := args.Get(0).(*entity.ProductLot)
	return l, args.Error(1)
}

func (m *mockInventory) CreateSerial(ctx context.Context, tenantID, serialNumber, productID, lotID string) (*entity.ProductSerial, error) {
	args := m.Called(ctx, tenantID, serialNumber, productID, lotID)
	s, _ := args.Get(0).(*entity.ProductSerial)
	return s, args.Error(1)
}

type mockMovements struct{ mock.Mock }

func (m *mockMovements) Create(ctx context.Context, payload inventory.MovementPayload) (*entity.InventoryMovement, error) {
	args := m.Called(ctx, payload)
	mov, _ := args.Get(0).(*entity.InventoryMovement)
	return mov, args.Error(1)
}

// fakeTx emula TxRunner: committed solo queda en true si fn no falla.
type fakeTx struct {
	runs      int
	committed bool
}

func (f *fakeTx) Run(_ context.Context, fn func(repos inventory.TxRepositories) error) error {
	f.runs++
	if err := fn(inventory.TxRepositories{}); err != nil {
		return err
	}
	f.committed = true
	return nil
}
