package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre database/sql.
type WarehouseRepo struct {
	q Querier
	d Dialect
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier, d Dialect) *WarehouseRepo {
	return &WarehouseRepo{q: q, d: d}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO warehouses (name, location, created_at) VALUES (?, ?, ?)`,
		w.Name, w.Location, formatTime(w.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert warehouse", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	w.ID = id
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, name, location, created_at FROM warehouses WHERE id = ?`, id)
	w, err := scanWarehouse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap("get warehouse", err)
	}
	return w, nil
}

// List devuelve todas las bodegas.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, location, created_at FROM warehouses ORDER BY id`)
	if err != nil {
		return nil, r.d.wrap("list warehouses", err)
	}
	defer rows.Close()
	list := make([]*entity.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func scanWarehouse(s rowScanner) (*entity.Warehouse, error) {
	var w entity.Warehouse
	var created string
	if err := s.Scan(&w.ID, &w.Name, &w.Location, &created); err != nil {
		return nil, err
	}
	var err error
	if w.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &w, nil
}
