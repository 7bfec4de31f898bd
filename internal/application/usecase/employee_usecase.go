package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// EmployeeUseCase listado, alta y baja de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		r := dto.EmployeeResponse{
			ID:       e.ID,
			Name:     e.Name,
			Position: e.Position,
			Phone:    e.Phone,
			Email:    e.Email,
			Salary:   e.Salary,
		}
		if e.HiredAt != nil {
			s := e.HiredAt.Format(dateLayout)
			r.HiredAt = &s
		}
		out = append(out, r)
	}
	return out, nil
}

// Create persiste un empleado. fecha_contratacion vacía se guarda como NULL;
// un formato distinto de YYYY-MM-DD devuelve domain.ErrInvalidInput.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (int64, error) {
	e := &entity.Employee{
		Name:     in.Name,
		Position: in.Position,
		Phone:    in.Phone,
		Email:    in.Email,
		Salary:   in.Salary,
	}
	if s := strings.TrimSpace(in.HiredAt); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return 0, fmt.Errorf("%w: fecha_contratacion %q", domain.ErrInvalidInput, s)
		}
		e.HiredAt = &d
	}
	return uc.repo.Create(ctx, e)
}

// Delete elimina un empleado; domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
