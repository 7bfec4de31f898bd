package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) (int64, error)
	Delete(ctx context.Context, id int64) error
}
