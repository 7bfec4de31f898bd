package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre las vistas estadisticas_productos y producto_mas_vendido.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ProductStats devuelve unidades, ingresos y número de ventas por producto.
func (r *ReportRepo) ProductStats(ctx context.Context) ([]*entity.ProductStats, error) {
	const query = `
		SELECT id_producto, nombre_producto, unidades_vendidas, ingresos, numero_ventas
		FROM estadisticas_productos
		ORDER BY unidades_vendidas DESC, id_producto`
	return r.scanStats(ctx, "estadisticas_productos", query)
}

// BestSellers devuelve el producto (o los empatados) con más unidades vendidas.
func (r *ReportRepo) BestSellers(ctx context.Context) ([]*entity.ProductStats, error) {
	const query = `
		SELECT id_producto, nombre_producto, unidades_vendidas, ingresos, numero_ventas
		FROM producto_mas_vendido
		ORDER BY id_producto`
	return r.scanStats(ctx, "producto_mas_vendido", query)
}

func (r *ReportRepo) scanStats(ctx context.Context, view, query string) ([]*entity.ProductStats, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.%s: %w", view, err)
	}
	defer rows.Close()

	var list []*entity.ProductStats
	for rows.Next() {
		var s entity.ProductStats
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.UnitsSold, &s.Revenue, &s.SalesCount); err != nil {
			return nil, fmt.Errorf("reports.%s scan: %w", view, err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
