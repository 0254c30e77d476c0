package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, company_id, lot_number, product_id, supplier_id, manufacture_date, expiration_date,
	initial_quantity, current_quantity, status, received_at`

// LotRepo implementación de LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote.
func (r *LotRepo) Create(ctx context.Context, l *entity.ProductLot) error {
	_, err := r.q.Exec(ctx, `INSERT INTO product_lots (`+lotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.CompanyID, l.LotNumber, l.ProductID, l.SupplierID, l.ManufactureDate, l.ExpirationDate,
		l.InitialQuantity, l.CurrentQuantity, l.Status, l.ReceivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.ProductLot, error) {
	if !validID(id) {
		return nil, nil
	}
	l, err := scanLot(r.q.QueryRow(ctx, `SELECT `+lotColumns+` FROM product_lots WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// ListByProduct lista los lotes de un producto, del más antiguo al más reciente.
func (r *LotRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.ProductLot, error) {
	if !validID(productID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+lotColumns+` FROM product_lots
		WHERE company_id = $1 AND product_id = $2 ORDER BY received_at`, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLot(row pgx.Row) (*entity.ProductLot, error) {
	var l entity.ProductLot
	err := row.Scan(&l.ID, &l.CompanyID, &l.LotNumber, &l.ProductID, &l.SupplierID,
		&l.ManufactureDate, &l.ExpirationDate, &l.InitialQuantity, &l.CurrentQuantity, &l.Status, &l.ReceivedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
