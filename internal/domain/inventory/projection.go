package inventory

import (
	"sort"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MovementDeltas descompone un movimiento en los deltas que aplica sobre la proyección de existencias.
// Cada serial recibe una unidad (con el signo del movimiento) y el resto de la cantidad queda
// en el ítem a nivel de lote (SerialID vacío). La suma de los deltas es siempre mov.Quantity.
func MovementDeltas(mov *entity.InventoryMovement) []*entity.InventoryItem {
	unit := decimal.NewFromInt(1)
	if mov.Quantity.IsNegative() {
		unit = unit.Neg()
	}
	newDelta := func(serialID string, qty decimal.Decimal) *entity.InventoryItem {
		return &entity.InventoryItem{
			CompanyID:  mov.CompanyID,
			ProductID:  mov.ProductID,
			LocationID: mov.ToLocationID,
			LotID:      mov.LotID,
			SerialID:   serialID,
			Quantity:   qty,
			UpdatedAt:  mov.MovementDate,
		}
	}

	deltas := make([]*entity.InventoryItem, 0, len(mov.SerialIDs)+1)
	remainder := mov.Quantity
	for _, serialID := range mov.SerialIDs {
		deltas = append(deltas, newDelta(serialID, unit))
		remainder = remainder.Sub(unit)
	}
	if len(mov.SerialIDs) == 0 || !remainder.IsZero() {
		deltas = append(deltas, newDelta("", remainder))
	}
	return deltas
}

// Project reproduce el libro de movimientos y devuelve las existencias resultantes,
// ordenadas por llave para que el resultado sea determinista.
func Project(movements []*entity.InventoryMovement) []*entity.InventoryItem {
	byKey := make(map[entity.ItemKey]*entity.InventoryItem)
	for _, mov := range movements {
		for _, d := range MovementDeltas(mov) {
			k := d.Key()
			if cur, ok := byKey[k]; ok {
				cur.Quantity = cur.Quantity.Add(d.Quantity)
				if d.UpdatedAt.After(cur.UpdatedAt) {
					cur.UpdatedAt = d.UpdatedAt
				}
				continue
			}
			byKey[k] = d
		}
	}
	items := make([]*entity.InventoryItem, 0, len(byKey))
	for _, it := range byKey {
		items = append(items, it)
	}
	SortItems(items)
	return items
}

// ItemDiff describe una diferencia entre la proyección almacenada y la reconstruida.
type ItemDiff struct {
	Key       entity.ItemKey
	Stored    decimal.Decimal
	Projected decimal.Decimal
}

// Diff compara existencias almacenadas contra las reconstruidas desde el libro.
// Un ítem ausente en alguno de los lados cuenta como cantidad cero.
func Diff(stored, projected []*entity.InventoryItem) []ItemDiff {
	type pair struct{ stored, projected decimal.Decimal }
	byKey := make(map[entity.ItemKey]*pair)
	get := func(k entity.ItemKey) *pair {
		p, ok := byKey[k]
		if !ok {
			p = &pair{}
			byKey[k] = p
		}
		return p
	}
	for _, it := range stored {
		p := get(it.Key())
		p.stored = p.stored.Add(it.Quantity)
	}
	for _, it := range projected {
		p := get(it.Key())
		p.projected = p.projected.Add(it.Quantity)
	}

	var diffs []ItemDiff
	for k, p := range byKey {
		if !p.stored.Equal(p.projected) {
			diffs = append(diffs, ItemDiff{Key: k, Stored: p.stored, Projected: p.projected})
		}
	}
	sort.Slice(diffs, func(i, j int) bool { return keyLess(diffs[i].Key, diffs[j].Key) })
	return diffs
}

// SortItems ordena ítems por su llave natural.
func SortItems(items []*entity.InventoryItem) {
	sort.Slice(items, func(i, j int) bool { return keyLess(items[i].Key(), items[j].Key()) })
}

func keyLess(a, b entity.ItemKey) bool {
	if a.ProductID != b.ProductID {
		return a.ProductID < b.ProductID
	}
	if a.VariantID != b.VariantID {
		return a.VariantID < b.VariantID
	}
	if a.LocationID != b.LocationID {
		return a.LocationID < b.LocationID
	}
	if a.LotID != b.LotID {
		return a.LotID < b.LotID
	}
	return a.SerialID < b.SerialID
}
