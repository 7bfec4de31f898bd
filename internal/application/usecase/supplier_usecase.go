package usecase

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// SupplierUseCase listado, alta y baja de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{
			ID:      s.ID,
			Name:    s.Name,
			Contact: s.Contact,
			Phone:   s.Phone,
			Email:   s.Email,
			Address: s.Address,
		})
	}
	return out, nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (int64, error) {
	return uc.repo.Create(ctx, &entity.Supplier{
		Name:    in.Name,
		Contact: in.Contact,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	})
}

// Delete falla con error de restricción si algún producto referencia al proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
