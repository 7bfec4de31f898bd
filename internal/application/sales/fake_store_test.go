package sales_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

type lineKey struct{ saleID, productID int64 }

// memStore modela las tablas ventas, detalle_venta e inventario con las mismas
// restricciones que los procedimientos almacenados.
type memStore struct {
	products  map[int64]string
	stock     map[int64]int
	sales     map[int64]*entity.Sale
	lines     map[lineKey]*entity.SaleLine
	nextSale  int64
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		products: map[int64]string{},
		stock:    map[int64]int{},
		sales:    map[int64]*entity.Sale{},
		lines:    map[lineKey]*entity.SaleLine{},
		nextSale: 1,
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	c.nextSale = s.nextSale
	c.rollbacks = s.rollbacks
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for k, v := range s.lines {
		cp := *v
		c.lines[k] = &cp
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	rollbacks := s.rollbacks
	*s = *from
	s.rollbacks = rollbacks + 1
}

func (s *memStore) totalLines() int { return len(s.lines) }

// memTxRunner emula BEGIN/COMMIT/ROLLBACK sobre memStore.
// beforeInventory permite inyectar un fallo entre los dos pasos.
type memTxRunner struct {
	store           *memStore
	beforeInventory func() error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.InventoryRepository) error) error {
	snap := r.store.snapshot()
	inv := repository.InventoryRepository(&memInventoryRepo{store: r.store})
	if r.beforeInventory != nil {
		inv = &failingInventoryRepo{InventoryRepository: inv, fail: r.beforeInventory}
	}
	if err := fn(&memSaleRepo{store: r.store}, inv); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type memSaleRepo struct{ store *memStore }

func (m *memSaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(m.store.sales))
	for _, s := range m.store.sales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, ok := m.store.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *memSaleRepo) ListLines(ctx context.Context, saleID int64) ([]*entity.SaleLine, error) {
	out := []*entity.SaleLine{}
	for k, l := range m.store.lines {
		if k.saleID == saleID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *memSaleRepo) AddOrUpdate(ctx context.Context, saleID *int64, productID int64, quantity int, subtotal decimal.Decimal) (int64, error) {
	name, ok := m.store.products[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	if quantity <= 0 || subtotal.IsNegative() {
		return 0, domain.ErrConstraint
	}
	var id int64
	if saleID == nil {
		id = m.store.nextSale
	} else {
		id = *saleID
	}
	if id >= m.store.nextSale {
		m.store.nextSale = id + 1
	}
	sale, ok := m.store.sales[id]
	if !ok {
		sale = &entity.Sale{ID: id, Date: time.Now(), Total: decimal.Zero}
		m.store.sales[id] = sale
	}
	sale.Total = sale.Total.Add(subtotal)

	k := lineKey{id, productID}
	if l, ok := m.store.lines[k]; ok {
		l.Quantity += quantity
		l.Subtotal = l.Subtotal.Add(subtotal)
	} else {
		m.store.lines[k] = &entity.SaleLine{SaleID: id, ProductID: productID, ProductName: name, Quantity: quantity, Subtotal: subtotal}
	}
	return id, nil
}

type memInventoryRepo struct{ store *memStore }

func (m *memInventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for id, st := range m.store.stock {
		out = append(out, &entity.InventoryItem{ProductID: id, ProductName: m.store.products[id], StockActual: st})
	}
	return out, nil
}

func (m *memInventoryRepo) Initialize(ctx context.Context, productID int64, initialStock int) error {
	if _, ok := m.store.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := m.store.stock[productID]; ok {
		return domain.ErrInventoryAlreadyInitialized
	}
	m.store.stock[productID] = initialStock
	return nil
}

func (m *memInventoryRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	st, ok := m.store.stock[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if st-quantity < 0 {
		return domain.ErrInsufficientStock
	}
	m.store.stock[productID] = st - quantity
	return nil
}

type failingInventoryRepo struct {
	repository.InventoryRepository
	fail func() error
}

func (f *failingInventoryRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.InventoryRepository.Decrement(ctx, productID, quantity)
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(ctx context.Context) error {
	c.calls++
	return c.err
}
