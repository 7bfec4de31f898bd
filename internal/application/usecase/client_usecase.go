package usecase

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

// ClientUseCase listado, alta y baja de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ClientResponse{
			ID: c.ID, Name: c.Name, Address: c.Address, Phone: c.Phone, Email: c.Email,
		})
	}
	return out, nil
}

// Create persiste un cliente y devuelve su id.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (int64, error) {
	return uc.repo.Create(ctx, &entity.Client{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	})
}

// Delete elimina un cliente; domain.ErrNotFound si no existe.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
