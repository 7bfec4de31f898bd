package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// List devuelve el inventario unido a productos.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `
		SELECT p.id_producto, p.nombre_producto, i.stock_actual, i.ultima_actualizacion
		FROM inventario i
		JOIN productos p ON i.id_producto = p.id_producto
		ORDER BY p.id_producto`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.StockActual, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Initialize inserta la fila de inventario distinguiendo producto inexistente (FK),
// inventario ya inicializado (único) y cualquier otro fallo.
func (r *InventoryRepo) Initialize(ctx context.Context, productID int64, initialStock int) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventario (id_producto, stock_actual) VALUES ($1, $2)`,
		productID, initialStock,
	)
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return fmt.Errorf("insert inventario: %w: %w", domain.ErrProductNotFound, err)
	case isUniqueViolation(err):
		return fmt.Errorf("insert inventario: %w: %w", domain.ErrInventoryAlreadyInitialized, err)
	default:
		return wrapErr("insert inventario", err)
	}
}

// Decrement invoca el procedimiento actualizar_inventario, que nunca deja el stock negativo.
func (r *InventoryRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	_, err := r.q.Exec(ctx, `CALL actualizar_inventario($1::bigint, $2::int)`, productID, quantity)
	switch {
	case err == nil:
		return nil
	case isCheckViolation(err):
		return fmt.Errorf("actualizar_inventario: %w: %w", domain.ErrInsufficientStock, err)
	case isNoDataFound(err):
		return fmt.Errorf("actualizar_inventario: %w: %w", domain.ErrNotFound, err)
	default:
		return wrapErr("actualizar_inventario", err)
	}
}
