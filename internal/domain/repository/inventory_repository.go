package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// InventoryRepository define el puerto para la tabla Inventario.
type InventoryRepository interface {
	List(ctx context.Context) ([]*entity.InventoryItem, error)

	// Initialize inserta la fila de inventario del producto. Errores tipados:
	// domain.ErrProductNotFound (FK) y domain.ErrInventoryAlreadyInitialized (único).
	Initialize(ctx context.Context, productID int64, initialStock int) error

	// Decrement resta quantity del stock actual; domain.ErrInsufficientStock si quedaría negativo
	// y domain.ErrNotFound si el producto no tiene fila de inventario.
	Decrement(ctx context.Context, productID int64, quantity int) error
}
