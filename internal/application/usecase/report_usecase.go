package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// Claves de caché de los reportes derivados de ventas.
const (
	CacheKeyProductStats = "gestion-ventas:reportes:estadisticas_productos"
	CacheKeyBestSellers  = "gestion-ventas:reportes:producto_mas_vendido"
)

// ReportCache caché clave/valor para reportes. Get devuelve false si la clave no existe.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// ReportUseCase lee las vistas de estadísticas con caché read-through.
// La caché es opcional: un fallo se registra y se consulta la BD.
type ReportUseCase struct {
	repo  repository.ReportRepository
	cache ReportCache
}

// NewReportUseCase construye el caso de uso. cache puede ser nil.
func NewReportUseCase(repo repository.ReportRepository, cache ReportCache) *ReportUseCase {
	return &ReportUseCase{repo: repo, cache: cache}
}

// ProductStats devuelve unidades, ingresos y número de ventas por producto.
func (uc *ReportUseCase) ProductStats(ctx context.Context) ([]dto.ProductStatsDTO, error) {
	return uc.cached(ctx, CacheKeyProductStats, uc.repo.ProductStats)
}

// BestSellers devuelve el producto más vendido (varios si empatan).
func (uc *ReportUseCase) BestSellers(ctx context.Context) ([]dto.ProductStatsDTO, error) {
	return uc.cached(ctx, CacheKeyBestSellers, uc.repo.BestSellers)
}

// Invalidate descarta los reportes cacheados. Lo invoca el registro de ventas.
func (uc *ReportUseCase) Invalidate(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Delete(ctx, CacheKeyProductStats, CacheKeyBestSellers)
}

func (uc *ReportUseCase) cached(
	ctx context.Context,
	key string,
	load func(context.Context) ([]*entity.ProductStats, error),
) ([]dto.ProductStatsDTO, error) {
	if uc.cache != nil {
		var hit []dto.ProductStatsDTO
		ok, err := uc.cache.Get(ctx, key, &hit)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("leer caché de reportes")
		} else if ok {
			return hit, nil
		}
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductStatsDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductStatsDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
			SalesCount:  r.SalesCount,
		})
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, out); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("guardar caché de reportes")
		}
	}
	return out, nil
}
