package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// List devuelve todas las ventas.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT id_venta, fecha, total FROM ventas ORDER BY id_venta`)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.Total); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta; domain.ErrNotFound si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT id_venta, fecha, total FROM ventas WHERE id_venta = $1`, id).
		Scan(&s.ID, &s.Date, &s.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// ListLines devuelve las líneas de la venta con el nombre del producto.
func (r *SaleRepo) ListLines(ctx context.Context, saleID int64) ([]*entity.SaleLine, error) {
	query := `
		SELECT d.id_venta, d.id_producto, p.nombre_producto, d.cantidad, d.subtotal
		FROM detalle_venta d
		JOIN productos p ON p.id_producto = d.id_producto
		WHERE d.id_venta = $1
		ORDER BY d.id_detalle`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle_venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.SaleID, &l.ProductID, &l.ProductName, &l.Quantity, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle_venta: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// AddOrUpdate invoca el procedimiento add_or_update_venta. Un producto inexistente
// viola la FK de detalle_venta y se devuelve como domain.ErrProductNotFound.
func (r *SaleRepo) AddOrUpdate(
	ctx context.Context,
	saleID *int64,
	productID int64,
	quantity int,
	subtotal decimal.Decimal,
) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`CALL add_or_update_venta($1::bigint, $2::bigint, $3::int, $4::numeric)`,
		saleID, productID, quantity, subtotal,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("add_or_update_venta: %w: %w", domain.ErrProductNotFound, err)
		}
		return 0, wrapErr("add_or_update_venta", err)
	}
	return id, nil
}
