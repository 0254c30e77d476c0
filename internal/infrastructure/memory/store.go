package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-entries/internal/application/inventory"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
)

// Store guarda el estado en memoria. Implementa inventory.TxRunner: cada Run trabaja sobre
// una copia del estado que solo reemplaza al original si fn no retorna error.
type Store struct {
	mu   sync.Mutex
	data *state
}

type itemKey struct {
	companyID string
	entity.ItemKey
}

type state struct {
	suppliers map[string]entity.Supplier
	locations map[string]entity.Location
	products  map[string]entity.Product
	lots      map[string]entity.ProductLot
	serials   map[string]entity.ProductSerial
	movements []entity.InventoryMovement
	items     map[itemKey]entity.InventoryItem
}

// Stats cantidades de registros persistidos.
type Stats struct {
	Suppliers int
	Locations int
	Products  int
	Lots      int
	Serials   int
	Movements int
	Items     int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: &state{
		suppliers: make(map[string]entity.Supplier),
		locations: make(map[string]entity.Location),
		products:  make(map[string]entity.Product),
		lots:      make(map[string]entity.ProductLot),
		serials:   make(map[string]entity.ProductSerial),
		items:     make(map[itemKey]entity.InventoryItem),
	}}
}

// Run ejecuta fn con repositorios sobre una copia del estado. Las transacciones se serializan.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.data.clone()
	sc := scope{store: s, tx: tx}
	if err := fn(inventory.TxRepositories{
		Products:  &ProductRepo{sc: sc},
		Lots:      &LotRepo{sc: sc},
		Serials:   &SerialRepo{sc: sc},
		Movements: &MovementRepo{sc: sc},
		Items:     &ItemRepo{sc: sc},
	}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = tx
	return nil
}

// Stats devuelve los conteos actuales.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Suppliers: len(s.data.suppliers),
		Locations: len(s.data.locations),
		Products:  len(s.data.products),
		Lots:      len(s.data.lots),
		Serials:   len(s.data.serials),
		Movements: len(s.data.movements),
		Items:     len(s.data.items),
	}
}

func (d *state) clone() *state {
	c := &state{
		suppliers: make(map[string]entity.Supplier, len(d.suppliers)),
		locations: make(map[string]entity.Location, len(d.locations)),
		products:  make(map[string]entity.Product, len(d.products)),
		lots:      make(map[string]entity.ProductLot, len(d.lots)),
		serials:   make(map[string]entity.ProductSerial, len(d.serials)),
		movements: make([]entity.InventoryMovement, len(d.movements)),
		items:     make(map[itemKey]entity.InventoryItem, len(d.items)),
	}
	for k, v := range d.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range d.locations {
		c.locations[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.lots {
		c.lots[k] = v
	}
	for k, v := range d.serials {
		c.serials[k] = v
	}
	copy(c.movements, d.movements)
	for k, v := range d.items {
		c.items[k] = v
	}
	return c
}

// scope decide sobre qué estado opera un repositorio: la copia de una tx o el estado
// compartido bajo el mutex.
type scope struct {
	store *Store
	tx    *state
}

func (sc scope) do(fn func(d *state) error) error {
	if sc.tx != nil {
		return fn(sc.tx)
	}
	sc.store.mu.Lock()
	defer sc.store.mu.Unlock()
	return fn(sc.store.data)
}
