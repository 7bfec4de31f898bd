package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
	"github.com/jhoicas/GestionVentas-api/internal/domain/entity"
	"github.com/jhoicas/GestionVentas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id_cliente, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), COALESCE(email, '')
		FROM clientes ORDER BY id_cliente`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) (int64, error) {
	query := `
		INSERT INTO clientes (nombre, direccion, telefono, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id_cliente`
	var id int64
	if err := r.q.QueryRow(ctx, query, c.Name, c.Address, c.Phone, c.Email).Scan(&id); err != nil {
		return 0, wrapErr("insert cliente", err)
	}
	c.ID = id
	return id, nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id_cliente = $1`, id)
	if err != nil {
		return wrapErr("delete cliente", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
