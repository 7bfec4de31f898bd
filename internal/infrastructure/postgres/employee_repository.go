package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT id_empleado, nombre, COALESCE(cargo, ''), COALESCE(telefono, ''), COALESCE(email, ''),
		       COALESCE(salario, 0), fecha_contratacion
		FROM empleados ORDER BY id_empleado`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Phone, &e.Email, &e.Salary, &e.HiredAt); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO empleados (nombre, cargo, telefono, email, salario, fecha_contratacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_empleado`
	var id int64
	err := r.q.QueryRow(ctx, query, e.Name, e.Position, e.Phone, e.Email, e.Salary, e.HiredAt).Scan(&id)
	if err != nil {
		return 0, wrapErr("insert empleado", err)
	}
	e.ID = id
	return id, nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM empleados WHERE id_empleado = $1`, id)
	if err != nil {
		return wrapErr("delete empleado", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
