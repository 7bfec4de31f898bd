package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionVentas-api/internal/application/inventory"
	"github.com/jhoicas/GestionVentas-api/internal/application/sales"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/GestionVentas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con las restricciones del esquema
// ──────────────────────────────────────────────────────────────────────────────

type db struct {
	clients   map[int64]*entity.Client
	suppliers map[int64]*entity.Supplier
	products  map[int64]*entity.Product
	employees map[int64]*entity.Employee
	stock     map[int64]int
	sales     map[int64]*entity.Sale
	lines     map[[2]int64]*entity.SaleLine
	seq       int64
	failList  error
}

func newDB() *db {
	return &db{
		clients:   map[int64]*entity.Client{},
		suppliers: map[int64]*entity.Supplier{},
		products:  map[int64]*entity.Product{},
		employees: map[int64]*entity.Employee{},
		stock:     map[int64]int{},
		sales:     map[int64]*entity.Sale{},
		lines:     map[[2]int64]*entity.SaleLine{},
	}
}

func (d *db) next() int64 { d.seq++; return d.seq }

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type clientRepo struct{ d *db }

func (r clientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	if r.d.failList != nil {
		return nil, r.d.failList
	}
	out := []*entity.Client{}
	for _, k := range sortedKeys(r.d.clients) {
		out = append(out, r.d.clients[k])
	}
	return out, nil
}
func (r clientRepo) Create(ctx context.Context, c *entity.Client) (int64, error) {
	c.ID = r.d.next()
	r.d.clients[c.ID] = c
	return c.ID, nil
}
func (r clientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.d.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.d.clients, id)
	return nil
}

type supplierRepo struct{ d *db }

func (r supplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	out := []*entity.Supplier{}
	for _, k := range sortedKeys(r.d.suppliers) {
		out = append(out, r.d.suppliers[k])
	}
	return out, nil
}
func (r supplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	s.ID = r.d.next()
	r.d.suppliers[s.ID] = s
	return s.ID, nil
}
func (r supplierRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.d.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.d.products {
		if p.SupplierID != nil && *p.SupplierID == id {
			return domain.ErrConstraint
		}
	}
	delete(r.d.suppliers, id)
	return nil
}

type productRepo struct{ d *db }

func (r productRepo) List(ctx context.Context) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, k := range sortedKeys(r.d.products) {
		out = append(out, r.d.products[k])
	}
	return out, nil
}
func (r productRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	p.ID = r.d.next()
	r.d.products[p.ID] = p
	return p.ID, nil
}
func (r productRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.d.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.d.products, id)
	return nil
}

type employeeRepo struct{ d *db }

func (r employeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	out := []*entity.Employee{}
	for _, k := range sortedKeys(r.d.employees) {
		out = append(out, r.d.employees[k])
	}
	return out, nil
}
func (r employeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	e.ID = r.d.next()
	r.d.employees[e.ID] = e
	return e.ID, nil
}
func (r employeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.d.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.d.employees, id)
	return nil
}

type inventoryRepo struct{ d *db }

func (r inventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, k := range sortedKeys(r.d.stock) {
		out = append(out, &entity.InventoryItem{ProductID: k, ProductName: r.d.products[k].Name, StockActual: r.d.stock[k], UpdatedAt: time.Now()})
	}
	return out, nil
}
func (r inventoryRepo) Initialize(ctx context.Context, productID int64, initialStock int) error {
	if _, ok := r.d.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := r.d.stock[productID]; ok {
		return domain.ErrInventoryAlreadyInitialized
	}
	r.d.stock[productID] = initialStock
	return nil
}
func (r inventoryRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	st, ok := r.d.stock[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if st < quantity {
		return domain.ErrInsufficientStock
	}
	r.d.stock[productID] = st - quantity
	return nil
}

type saleRepo struct{ d *db }

func (r saleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, k := range sortedKeys(r.d.sales) {
		out = append(out, r.d.sales[k])
	}
	return out, nil
}
func (r saleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, ok := r.d.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (r saleRepo) ListLines(ctx context.Context, saleID int64) ([]*entity.SaleLine, error) {
	out := []*entity.SaleLine{}
	for k, l := range r.d.lines {
		if k[0] == saleID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r saleRepo) AddOrUpdate(ctx context.Context, saleID *int64, productID int64, quantity int, subtotal decimal.Decimal) (int64, error) {
	p, ok := r.d.products[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	var id int64
	if saleID == nil {
		id = r.d.next()
	} else {
		id = *saleID
	}
	s, ok := r.d.sales[id]
	if !ok {
		s = &entity.Sale{ID: id, Date: time.Now()}
		r.d.sales[id] = s
	}
	s.Total = s.Total.Add(subtotal)
	k := [2]int64{id, productID}
	if l, ok := r.d.lines[k]; ok {
		l.Quantity += quantity
		l.Subtotal = l.Subtotal.Add(subtotal)
	} else {
		r.d.lines[k] = &entity.SaleLine{SaleID: id, ProductID: productID, ProductName: p.Name, Quantity: quantity, Subtotal: subtotal}
	}
	return id, nil
}

type reportRepo struct{ d *db }

func (r reportRepo) stats() []*entity.ProductStats {
	byProduct := map[int64]*entity.ProductStats{}
	for _, l := range r.d.lines {
		s, ok := byProduct[l.ProductID]
		if !ok {
			s = &entity.ProductStats{ProductID: l.ProductID, ProductName: l.ProductName}
			byProduct[l.ProductID] = s
		}
		s.UnitsSold += int64(l.Quantity)
		s.Revenue = s.Revenue.Add(l.Subtotal)
		s.SalesCount++
	}
	out := []*entity.ProductStats{}
	for _, k := range sortedKeys(byProduct) {
		out = append(out, byProduct[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UnitsSold > out[j].UnitsSold })
	return out
}
func (r reportRepo) ProductStats(ctx context.Context) ([]*entity.ProductStats, error) {
	return r.stats(), nil
}
func (r reportRepo) BestSellers(ctx context.Context) ([]*entity.ProductStats, error) {
	s := r.stats()
	if len(s) > 1 {
		s = s[:1]
	}
	return s, nil
}

// txRunner copia el estado mutable y lo restaura si fn falla.
type txRunner struct{ d *db }

func (t txRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.InventoryRepository) error) error {
	stock := map[int64]int{}
	for k, v := range t.d.stock {
		stock[k] = v
	}
	salesCopy := map[int64]*entity.Sale{}
	for k, v := range t.d.sales {
		cp := *v
		salesCopy[k] = &cp
	}
	lines := map[[2]int64]*entity.SaleLine{}
	for k, v := range t.d.lines {
		cp := *v
		lines[k] = &cp
	}
	seq := t.d.seq
	if err := fn(saleRepo{t.d}, inventoryRepo{t.d}); err != nil {
		t.d.stock, t.d.sales, t.d.lines, t.d.seq = stock, salesCopy, lines, seq
		return err
	}
	return nil
}

type stubReceipt struct{}

func (stubReceipt) GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, lines []*entity.SaleLine) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app  *fiber.App
	db   *db
	ping error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	d := newDB()
	env := &testEnv{db: d}

	reportUC := usecase.NewReportUseCase(reportRepo{d}, nil)
	app := fiber.New()
	app.Use(apphttp.RequestLogger())
	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:       usecase.NewClientUseCase(clientRepo{d}),
		ProductUC:      usecase.NewProductUseCase(productRepo{d}),
		SupplierUC:     usecase.NewSupplierUseCase(supplierRepo{d}),
		EmployeeUC:     usecase.NewEmployeeUseCase(employeeRepo{d}),
		ReportUC:       reportUC,
		InventoryUC:    inventory.NewInventoryUseCase(inventoryRepo{d}),
		SaleQueryUC:    sales.NewSaleQueryUseCase(saleRepo{d}),
		RegisterSaleUC: sales.NewRegisterSaleLineUseCase(txRunner{d}, reportUC),
		ReceiptUC:      sales.NewReceiptUseCase(saleRepo{d}, stubReceipt{}),
		Ping:           func(ctx context.Context) error { return env.ping },
	})
	env.app = app
	return env
}

// seedProduct crea un producto con su fila de inventario.
func (e *testEnv) seedProduct(name string, price string, stock int) int64 {
	id := e.db.next()
	e.db.products[id] = &entity.Product{ID: id, Name: name, SalePrice: decimal.RequireFromString(price), Stock: stock}
	e.db.stock[id] = stock
	return id
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

var errDBDown = errors.New("conexión rechazada: 10.0.0.5:5432")
