package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// SupplierRepo implementa repository.SupplierRepository.
type SupplierRepo struct{ sc scope }

// NewSupplierRepository repositorio de proveedores fuera de transacción.
func NewSupplierRepository(s *Store) *SupplierRepo { return &SupplierRepo{sc: scope{store: s}} }

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	return r.sc.do(func(d *state) error {
		if _, ok := d.suppliers[supplier.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, s := range d.suppliers {
			if s.CompanyID == supplier.CompanyID && s.NIT == supplier.NIT {
				return domain.ErrDuplicate
			}
		}
		d.suppliers[supplier.ID] = *supplier
		return nil
	})
}

func (r *SupplierRepo) GetByCompanyAndNIT(_ context.Context, companyID, nit string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.sc.do(func(d *state) error {
		for _, s := range d.suppliers {
			if s.CompanyID == companyID && s.NIT == nit {
				s := s
				out = &s
				return nil
			}
		}
		return nil
	})
	return out, err
}

// LocationRepo implementa repository.LocationRepository.
type LocationRepo struct{ sc scope }

// NewLocationRepository repositorio de ubicaciones fuera de transacción.
func NewLocationRepository(s *Store) *LocationRepo { return &LocationRepo{sc: scope{store: s}} }

func (r *LocationRepo) Create(_ context.Context, loc *entity.Location) error {
	return r.sc.do(func(d *state) error {
		if _, ok := d.locations[loc.ID]; ok {
			return domain.ErrDuplicate
		}
		d.locations[loc.ID] = *loc
		return nil
	})
}

func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	var out *entity.Location
	err := r.sc.do(func(d *state) error {
		if l, ok := d.locations[id]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ sc scope }

// NewProductRepository repositorio de productos fuera de transacción.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{sc: scope{store: s}} }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.sc.do(func(d *state) error {
		if _, ok := d.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		if p.HasSKU() {
			for _, existing := range d.products {
				if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
					return domain.ErrDuplicate
				}
			}
		}
		d.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.sc.do(func(d *state) error {
		if p, ok := d.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	if sku == "" {
		return nil, nil
	}
	var out *entity.Product
	err := r.sc.do(func(d *state) error {
		for _, p := range d.products {
			if p.CompanyID == companyID && p.SKU == sku {
				p := p
				out = &p
				return nil
			}
		}
		return nil
	})
	return out, err
}

// LotRepo implementa repository.LotRepository.
type LotRepo struct{ sc scope }

// NewLotRepository repositorio de lotes fuera de transacción.
func NewLotRepository(s *Store) *LotRepo { return &LotRepo{sc: scope{store: s}} }

func (r *LotRepo) Create(_ context.Context, lot *entity.ProductLot) error {
	return r.sc.do(func(d *state) error {
		if _, ok := d.lots[lot.ID]; ok {
			return domain.ErrDuplicate
		}
		d.lots[lot.ID] = *lot
		return nil
	})
}

func (r *LotRepo) GetByID(_ context.Context, id string) (*entity.ProductLot, error) {
	var out *entity.ProductLot
	err := r.sc.do(func(d *state) error {
		if l, ok := d.lots[id]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *LotRepo) ListByProduct(_ context.Context, companyID, productID string) ([]*entity.ProductLot, error) {
	var out []*entity.ProductLot
	err := r.sc.do(func(d *state) error {
		for _, l := range d.lots {
			if l.CompanyID == companyID && l.ProductID == productID {
				l := l
				out = append(out, &l)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	return out, err
}

// SerialRepo implementa repository.SerialRepository.
type SerialRepo struct{ sc scope }

// NewSerialRepository repositorio de seriales fuera de transacción.
func NewSerialRepository(s *Store) *SerialRepo { return &SerialRepo{sc: scope{store: s}} }

func (r *SerialRepo) Create(_ context.Context, serial *entity.ProductSerial) error {
	return r.sc.do(func(d *state) error {
		if _, ok := d.serials[serial.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, s := range d.serials {
			if s.ProductID == serial.ProductID && s.SerialNumber == serial.SerialNumber {
				return domain.ErrDuplicate
			}
		}
		d.serials[serial.ID] = *serial
		return nil
	})
}

func (r *SerialRepo) ListByLot(_ context.Context, companyID, lotID string) ([]*entity.ProductSerial, error) {
	var out []*entity.ProductSerial
	err := r.sc.do(func(d *state) error {
		for _, s := range d.serials {
			if s.CompanyID == companyID && s.LotID == lotID {
				s := s
				out = append(out, &s)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out, err
}

// MovementRepo implementa repository.InventoryMovementRepository. Solo agrega.
type MovementRepo struct{ sc scope }

// NewMovementRepository repositorio de movimientos fuera de transacción.
func NewMovementRepository(s *Store) *MovementRepo { return &MovementRepo{sc: scope{store: s}} }

func (r *MovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	return r.sc.do(func(d *state) error {
		for _, existing := range d.movements {
			if existing.ID == m.ID {
				return domain.ErrDuplicate
			}
		}
		d.movements = append(d.movements, copyMovement(*m))
		return nil
	})
}

func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.InventoryMovement, error) {
	var out *entity.InventoryMovement
	err := r.sc.do(func(d *state) error {
		for _, m := range d.movements {
			if m.ID == id {
				c := copyMovement(m)
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *MovementRepo) ListByProduct(_ context.Context, companyID, productID string) ([]*entity.InventoryMovement, error) {
	return r.list(func(m *entity.InventoryMovement) bool {
		return m.CompanyID == companyID && m.ProductID == productID
	}, 0, 0)
}

func (r *MovementRepo) ListByLocation(_ context.Context, companyID, locationID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.list(func(m *entity.InventoryMovement) bool {
		if m.CompanyID != companyID || m.ToLocationID != locationID {
			return false
		}
		if from != nil && m.MovementDate.Before(*from) {
			return false
		}
		return to == nil || !m.MovementDate.After(*to)
	}, limit, offset)
}

func (r *MovementRepo) list(match func(m *entity.InventoryMovement) bool, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	err := r.sc.do(func(d *state) error {
		for _, m := range d.movements {
			if match(&m) {
				c := copyMovement(m)
				out = append(out, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MovementDate.Equal(out[j].MovementDate) {
			return out[i].MovementDate.Before(out[j].MovementDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyMovement(m entity.InventoryMovement) entity.InventoryMovement {
	m.SerialIDs = append([]string(nil), m.SerialIDs...)
	return m
}

// ItemRepo implementa repository.InventoryItemRepository.
type ItemRepo struct{ sc scope }

// NewItemRepository repositorio de existencias fuera de transacción.
func NewItemRepository(s *Store) *ItemRepo { return &ItemRepo{sc: scope{store: s}} }

func (r *ItemRepo) Apply(_ context.Context, delta *entity.InventoryItem) error {
	return r.sc.do(func(d *state) error {
		k := itemKey{companyID: delta.CompanyID, ItemKey: delta.Key()}
		cur, ok := d.items[k]
		if !ok {
			d.items[k] = *delta
			return nil
		}
		cur.Quantity = cur.Quantity.Add(delta.Quantity)
		if delta.UpdatedAt.After(cur.UpdatedAt) {
			cur.UpdatedAt = delta.UpdatedAt
		}
		d.items[k] = cur
		return nil
	})
}

func (r *ItemRepo) ListByProduct(_ context.Context, companyID, productID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := r.sc.do(func(d *state) error {
		for k, it := range d.items {
			if k.companyID == companyID && it.ProductID == productID {
				it := it
				out = append(out, &it)
			}
		}
		return nil
	})
	return out, err
}
