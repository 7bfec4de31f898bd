package sales

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ninguna escritura aplicada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// ReportInvalidator descarta los reportes cacheados que dependen de las ventas.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, lines []*entity.SaleLine) ([]byte, error)
}
