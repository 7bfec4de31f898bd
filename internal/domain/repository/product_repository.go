package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	// Create persiste el producto y devuelve el identificador asignado.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// Delete devuelve domain.ErrNotFound si no se eliminó ninguna fila.
	Delete(ctx context.Context, id int64) error
}
