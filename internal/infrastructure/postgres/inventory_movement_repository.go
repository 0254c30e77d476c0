package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, company_id, transaction_id, type, product_id, lot_id, serial_ids, to_location_id,
	quantity, reference, movement_date, created_at, created_by`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo inserta; la tabla además rechaza UPDATE y DELETE por trigger.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	serialIDs := m.SerialIDs
	if serialIDs == nil {
		serialIDs = []string{}
	}
	_, err := r.q.Exec(ctx, `INSERT INTO inventory_movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ID, m.CompanyID, m.TransactionID, m.Type, m.ProductID, nullIfEmpty(m.LotID), serialIDs,
		m.ToLocationID, m.Quantity, m.Reference, m.MovementDate, m.CreatedAt, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryMovementRepo) GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	if !validID(id) {
		return nil, nil
	}
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM inventory_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct devuelve el libro de un producto en orden cronológico.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryMovement, error) {
	if !validID(productID) {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+movementColumns+` FROM inventory_movements
		WHERE company_id = $1 AND product_id = $2 ORDER BY movement_date, created_at`, companyID, productID)
}

// ListByLocation lista movimientos de una ubicación en un rango de fechas.
func (r *InventoryMovementRepo) ListByLocation(ctx context.Context, companyID, locationID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	if !validID(locationID) {
		return nil, nil
	}
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE company_id = $1 AND to_location_id = $2`
	args := []any{companyID, locationID}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND movement_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND movement_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY movement_date, created_at"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, limit)
		pos++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", pos)
		args = append(args, offset)
	}
	return r.list(ctx, query, args...)
}

func (r *InventoryMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var lotID, createdBy *string
	err := row.Scan(&m.ID, &m.CompanyID, &m.TransactionID, &m.Type, &m.ProductID, &lotID, &m.SerialIDs,
		&m.ToLocationID, &m.Quantity, &m.Reference, &m.MovementDate, &m.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	m.LotID = derefString(lotID)
	m.CreatedBy = derefString(createdBy)
	return &m, nil
}
