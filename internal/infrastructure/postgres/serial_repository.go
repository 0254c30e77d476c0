package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

var _ repository.SerialRepository = (*SerialRepo)(nil)

// SerialRepo implementación de SerialRepository sobre PostgreSQL.
type SerialRepo struct {
	q Querier
}

// NewSerialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialRepository(q Querier) *SerialRepo {
	return &SerialRepo{q: q}
}

// Create persiste un serial; (product_id, serial_number) es único.
func (r *SerialRepo) Create(ctx context.Context, s *entity.ProductSerial) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_serials (id, company_id, serial_number, product_id, lot_id, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CompanyID, s.SerialNumber, s.ProductID, s.LotID, s.Status, s.ReceivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert serial: %w", err)
	}
	return nil
}

// ListByLot lista los seriales de un lote ordenados por número.
func (r *SerialRepo) ListByLot(ctx context.Context, companyID, lotID string) ([]*entity.ProductSerial, error) {
	if !validID(lotID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, serial_number, product_id, lot_id, status, received_at
		FROM product_serials WHERE company_id = $1 AND lot_id = $2 ORDER BY serial_number`, companyID, lotID)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSerial
	for rows.Next() {
		var s entity.ProductSerial
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.SerialNumber, &s.ProductID, &s.LotID, &s.Status, &s.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
