package sales

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas y sus líneas.
type SaleQueryUseCase struct {
	repo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(repo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{repo: repo}
}

// List devuelve todas las ventas.
func (uc *SaleQueryUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleResponse{ID: s.ID, Date: s.Date, Total: s.Total})
	}
	return out, nil
}

// Lines devuelve las líneas de una venta; domain.ErrNotFound si la venta no existe.
func (uc *SaleQueryUseCase) Lines(ctx context.Context, saleID int64) ([]dto.SaleLineResponse, error) {
	if _, err := uc.repo.GetByID(ctx, saleID); err != nil {
		return nil, err
	}
	lines, err := uc.repo.ListLines(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return toSaleLineResponses(lines), nil
}

func toSaleLineResponses(lines []*entity.SaleLine) []dto.SaleLineResponse {
	out := make([]dto.SaleLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.SaleLineResponse{
			SaleID:      l.SaleID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		})
	}
	return out
}
