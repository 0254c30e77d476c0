package inventory_test

import (
	"testing"
	"time"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movement(qty int64, lotID string, serials ...string) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		CompanyID:    "company-1",
		Type:         entity.MovementTypeIN,
		ProductID:    "product-1",
		LotID:        lotID,
		SerialIDs:    serials,
		ToLocationID: "location-1",
		Quantity:     decimal.NewFromInt(qty),
		MovementDate: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func sumQuantities(items []*entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}

func TestMovementDeltas_SinSeriales_UnSoloDeltaDeLote(t *testing.T) {
	deltas := inventory.MovementDeltas(movement(12, "lot-1"))

	require.Len(t, deltas, 1)
	assert.Equal(t, "", deltas[0].SerialID)
	assert.Equal(t, "lot-1", deltas[0].LotID)
	assert.Equal(t, "location-1", deltas[0].LocationID)
	assert.True(t, deltas[0].Quantity.Equal(decimal.NewFromInt(12)))
}

func TestMovementDeltas_SerialesCubrenLaCantidad(t *testing.T) {
	deltas := inventory.MovementDeltas(movement(2, "lot-1", "serial-a", "serial-b"))

	require.Len(t, deltas, 2, "sin resto no debe quedar ítem a nivel de lote")
	for _, d := range deltas {
		assert.NotEmpty(t, d.SerialID)
		assert.True(t, d.Quantity.Equal(decimal.NewFromInt(1)))
	}
}

func TestMovementDeltas_ConservaLaCantidadTotal(t *testing.T) {
	cases := []struct {
		name    string
		qty     int64
		serials []string
	}{
		{"resto positivo", 5, []string{"s1", "s2"}},
		{"mas seriales que cantidad", 1, []string{"s1", "s2", "s3"}},
		{"salida con serial", -3, []string{"s1"}},
		{"cantidad cero", 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mov := movement(tc.qty, "lot-1", tc.serials...)
			deltas := inventory.MovementDeltas(mov)
			assert.True(t, sumQuantities(deltas).Equal(mov.Quantity),
				"la suma de deltas debe ser igual a la cantidad del movimiento")
		})
	}
}

func TestProject_AgregaPorLlave(t *testing.T) {
	movs := []*entity.InventoryMovement{
		movement(10, "lot-1"),
		movement(5, "lot-1"),
		movement(3, "lot-2", "s1"),
	}

	items := inventory.Project(movs)

	require.Len(t, items, 3)
	byKey := map[entity.ItemKey]decimal.Decimal{}
	for _, it := range items {
		byKey[it.Key()] = it.Quantity
	}
	assert.True(t, byKey[entity.ItemKey{ProductID: "product-1", LocationID: "location-1", LotID: "lot-1"}].Equal(decimal.NewFromInt(15)))
	assert.True(t, byKey[entity.ItemKey{ProductID: "product-1", LocationID: "location-1", LotID: "lot-2"}].Equal(decimal.NewFromInt(2)))
	assert.True(t, byKey[entity.ItemKey{ProductID: "product-1", LocationID: "location-1", LotID: "lot-2", SerialID: "s1"}].Equal(decimal.NewFromInt(1)))
	assert.True(t, sumQuantities(items).Equal(decimal.NewFromInt(18)))
}

func TestDiff_DetectaDiferencias(t *testing.T) {
	projected := inventory.Project([]*entity.InventoryMovement{movement(10, "lot-1"), movement(4, "lot-2")})
	stored := []*entity.InventoryItem{
		{ProductID: "product-1", LocationID: "location-1", LotID: "lot-1", Quantity: decimal.NewFromInt(10)},
		{ProductID: "product-1", LocationID: "location-1", LotID: "lot-3", Quantity: decimal.NewFromInt(1)},
	}

	diffs := inventory.Diff(stored, projected)

	require.Len(t, diffs, 2)
	assert.Equal(t, "lot-2", diffs[0].Key.LotID)
	assert.True(t, diffs[0].Stored.IsZero())
	assert.True(t, diffs[0].Projected.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "lot-3", diffs[1].Key.LotID)
	assert.True(t, diffs[1].Projected.IsZero())
}

func TestDiff_ProyeccionCuadrada(t *testing.T) {
	movs := []*entity.InventoryMovement{movement(7, "lot-1", "s1", "s2")}
	assert.Empty(t, inventory.Diff(inventory.Project(movs), inventory.Project(movs)))
}
