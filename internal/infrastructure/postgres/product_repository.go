package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id_producto, id_proveedor, nombre_producto, COALESCE(descripcion, ''),
		       COALESCE(precio_venta, 0), COALESCE(stock, 0)
		FROM productos ORDER BY id_producto`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.SalePrice, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. Un id_proveedor inexistente lo rechaza la FK.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (id_proveedor, nombre_producto, descripcion, precio_venta, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_producto`
	var id int64
	err := r.q.QueryRow(ctx, query, p.SupplierID, p.Name, p.Description, p.SalePrice, p.Stock).Scan(&id)
	if err != nil {
		return 0, wrapErr("insert producto", err)
	}
	p.ID = id
	return id, nil
}

// Delete elimina un producto por ID. Falla con ErrConstraint si tiene ventas o inventario.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return wrapErr("delete producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
