package usecase

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. El stock operativo vive en inventario;
// productos.stock es un reflejo que actualiza el registro de ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create crea un producto. id_proveedor vacío o 0 se guarda como NULL.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	return uc.repo.Create(ctx, &entity.Product{
		SupplierID:  dto.OptionalID(in.SupplierID),
		Name:        in.Name,
		Description: in.Description,
		SalePrice:   in.SalePrice,
		Stock:       in.Stock.Int(),
	})
}

// Delete elimina un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Description: p.Description,
		SalePrice:   p.SalePrice,
		Stock:       p.Stock,
	}
}
