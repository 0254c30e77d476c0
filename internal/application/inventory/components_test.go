package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/memory"
)

func TestSupplierResolver_NormalizesAndScopes(t *testing.T) {
	store := seededStore(t)
	r := inventory.NewSupplierResolver(memory.NewSupplierRepository(store))
	ctx := context.Background()

	s, err := r.FindByTaxID(ctx, "900.123.456-8", tenantID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "sup-1", s.ID)

	s, err = r.FindByTaxID(ctx, "900123456", tenantID)
	require.NoError(t, err, "NIT sin dígito de verificación")
	require.NotNil(t, s)
	assert.Equal(t, "sup-1", s.ID)

	s, err = r.FindByTaxID(ctx, "900.123.456-8", "otra-empresa")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = r.FindByTaxID(ctx, "sin-digitos", tenantID)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestProductResolver_CreateAndFind(t *testing.T) {
	store := memory.NewStore()
	r := inventory.NewProductResolver(memory.NewProductRepository(store))
	ctx := context.Background()

	p, err := r.Create(ctx, tenantID, inventory.ProductDescriptor{SKU: "Café", Name: "Café", Cost: decimal.NewFromInt(1200)})
	require.NoError(t, err)
	assert.Equal(t, "Café", p.SKU)
	assert.NotEmpty(t, p.ID)

	found, err := r.FindBySKU(ctx, tenantID, "Café")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)

	_, err = r.Create(ctx, tenantID, inventory.ProductDescriptor{SKU: "Café", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err = r.FindBySKU(ctx, tenantID, "")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestLotRegistrar_CreateLot(t *testing.T) {
	store := memory.NewStore()
	r := inventory.NewLotRegistrar(memory.NewLotRepository(store))
	ctx := context.Background()
	exp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	lot, err := r.CreateLot(ctx, inventory.LotPayload{
		TenantID: tenantID, LotNumber: "L-1", ProductID: "p1", SupplierID: "sup-1",
		ExpirationDate: &exp, InitialQuantity: decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LotStatusActive, lot.Status)
	assert.True(t, lot.CurrentQuantity.Equal(decimal.NewFromInt(12)))

	_, err = r.CreateLot(ctx, inventory.LotPayload{TenantID: tenantID, LotNumber: "L-2", ProductID: "p1", SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSerialRegistrar_RejectsDuplicates(t *testing.T) {
	store := memory.NewStore()
	r := inventory.NewSerialRegistrar(memory.NewSerialRepository(store))
	ctx := context.Background()

	s, err := r.CreateSerial(ctx, tenantID, "SN-1", "p1", "l1")
	require.NoError(t, err)
	assert.Equal(t, entity.SerialStatusInStock, s.Status)

	_, err = r.CreateSerial(ctx, tenantID, "SN-1", "p1", "l2")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = r.CreateSerial(ctx, tenantID, " ", "p1", "l1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementLedger_AppendsAndProjects(t *testing.T) {
	store := memory.NewStore()
	ledger := inventory.NewMovementLedger(memory.NewMovementRepository(store), memory.NewItemRepository(store))
	ctx := context.Background()

	mov, err := ledger.Create(ctx, inventory.MovementPayload{
		TenantID: tenantID, TransactionID: "tx-1", Type: entity.MovementTypeIN, ProductID: "p1",
		LotID: "l1", SerialIDs: []string{"s1"}, ToLocationID: "loc-1", Quantity: decimal.NewFromInt(3), UserID: "u1",
	})
	require.NoError(t, err)
	assert.False(t, mov.MovementDate.IsZero())
	assert.Equal(t, "u1", mov.CreatedBy)

	items, err := memory.NewItemRepository(store).ListByProduct(ctx, tenantID, "p1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = ledger.Create(ctx, inventory.MovementPayload{
		TenantID: tenantID, Type: entity.MovementTypeIN, ProductID: "p1", ToLocationID: "loc-1", Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = ledger.Create(ctx, inventory.MovementPayload{
		TenantID: tenantID, Type: "RETURN", ProductID: "p1", ToLocationID: "loc-1", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
