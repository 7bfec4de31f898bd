package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// ReportRepository consultas de solo lectura sobre las vistas de estadísticas.
type ReportRepository interface {
	ProductStats(ctx context.Context) ([]*entity.ProductStats, error)
	// BestSellers devuelve el o los productos con más unidades vendidas (empates incluidos).
	BestSellers(ctx context.Context) ([]*entity.ProductStats, error)
}
