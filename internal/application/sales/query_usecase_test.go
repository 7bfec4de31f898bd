package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionVentas-api/internal/application/sales"
	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

func storeWithSale(t *testing.T) (*memStore, int64) {
	t.Helper()
	store := seededStore()
	uc := sales.NewRegisterSaleLineUseCase(&memTxRunner{store: store}, nil)
	id, err := uc.RegisterSaleLine(context.Background(), sales.SaleLineInput{ProductID: 1, Quantity: 2, Subtotal: decimal.RequireFromString("40.00")})
	require.NoError(t, err)
	return store, id
}

func TestSaleQuery_ListYLineas(t *testing.T) {
	store, id := storeWithSale(t)
	uc := sales.NewSaleQueryUseCase(&memSaleRepo{store: store})
	ctx := context.Background()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	lines, err := uc.Lines(ctx, id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Café", lines[0].ProductName)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSaleQuery_LineasDeVentaInexistente(t *testing.T) {
	uc := sales.NewSaleQueryUseCase(&memSaleRepo{store: newMemStore()})

	_, err := uc.Lines(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type stubGenerator struct {
	gotLines int
	err      error
}

func (g *stubGenerator) GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, lines []*entity.SaleLine) ([]byte, error) {
	g.gotLines = len(lines)
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestReceipt_Download(t *testing.T) {
	store, id := storeWithSale(t)
	gen := &stubGenerator{}
	uc := sales.NewReceiptUseCase(&memSaleRepo{store: store}, gen)

	pdf, name, err := uc.Download(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "venta-1.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, 1, gen.gotLines)
}

func TestReceipt_VentaInexistente(t *testing.T) {
	uc := sales.NewReceiptUseCase(&memSaleRepo{store: newMemStore()}, &stubGenerator{})

	_, _, err := uc.Download(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceipt_ErrorDelGenerador(t *testing.T) {
	store, id := storeWithSale(t)
	boom := errors.New("fuente no disponible")
	uc := sales.NewReceiptUseCase(&memSaleRepo{store: store}, &stubGenerator{err: boom})

	_, _, err := uc.Download(context.Background(), id)
	assert.ErrorIs(t, err, boom)
}
