package inventory

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// InventoryUseCase consulta e inicializa la tabla de inventario.
// Los descuentos de stock ocurren solo dentro del registro de ventas.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve el inventario unido al nombre de cada producto.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			StockActual: it.StockActual,
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return out, nil
}

// Initialize crea la fila de inventario de un producto.
// Errores: domain.ErrProductNotFound si el producto no existe y
// domain.ErrInventoryAlreadyInitialized si ya tenía fila. En ambos casos no se escribe nada.
func (uc *InventoryUseCase) Initialize(ctx context.Context, in dto.InitializeInventoryRequest) error {
	return uc.repo.Initialize(ctx, in.ProductID.Int64(), in.InitialStock.Int())
}
