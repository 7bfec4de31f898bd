package repository

import (
	"context"

	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) (int64, error)
	Delete(ctx context.Context, id int64) error
}
