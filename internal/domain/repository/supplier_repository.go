package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	Delete(ctx context.Context, id int64) error
}
