package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo proyección de existencias sobre PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Apply suma el delta en una sola sentencia; dos entradas concurrentes sobre la misma llave no pierden cantidades.
func (r *InventoryItemRepo) Apply(ctx context.Context, d *entity.InventoryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_items (company_id, product_id, variant_id, location_id, lot_id, serial_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, product_id, variant_id, location_id, lot_id, serial_id)
		DO UPDATE SET quantity = inventory_items.quantity + EXCLUDED.quantity,
		              updated_at = GREATEST(inventory_items.updated_at, EXCLUDED.updated_at)`,
		d.CompanyID, d.ProductID, d.VariantID, d.LocationID, d.LotID, d.SerialID, d.Quantity, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("apply inventory item: %w", err)
	}
	return nil
}

// ListByProduct lista las existencias almacenadas de un producto.
func (r *InventoryItemRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT company_id, product_id, variant_id, location_id, lot_id, serial_id, quantity, updated_at
		FROM inventory_items WHERE company_id = $1 AND product_id = $2
		ORDER BY variant_id, location_id, lot_id, serial_id`, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.CompanyID, &it.ProductID, &it.VariantID, &it.LocationID, &it.LotID,
			&it.SerialID, &it.Quantity, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
