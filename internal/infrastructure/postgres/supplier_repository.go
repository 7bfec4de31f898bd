package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	query := `
		SELECT id_proveedor, nombre, COALESCE(contacto, ''), COALESCE(telefono, ''),
		       COALESCE(email, ''), COALESCE(direccion, '')
		FROM proveedores ORDER BY id_proveedor`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Email, &s.Address); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO proveedores (nombre, contacto, telefono, email, direccion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_proveedor`
	var id int64
	if err := r.q.QueryRow(ctx, query, s.Name, s.Contact, s.Phone, s.Email, s.Address).Scan(&id); err != nil {
		return 0, wrapErr("insert proveedor", err)
	}
	s.ID = id
	return id, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id_proveedor = $1`, id)
	if err != nil {
		return wrapErr("delete proveedor", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
