package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia de ventas y sus líneas.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListLines(ctx context.Context, saleID int64) ([]*entity.SaleLine, error)

	// AddOrUpdate crea la venta si no existe (saleID nil asigna uno nuevo), suma el subtotal
	// al total acumulado y agrega o acumula la línea. Devuelve el id de la venta.
	// Debe ejecutarse dentro de la misma transacción que InventoryRepository.Decrement.
	AddOrUpdate(ctx context.Context, saleID *int64, productID int64, quantity int, subtotal decimal.Decimal) (int64, error)
}
