package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre database/sql.
type InventoryRepo struct {
	q Querier
	d Dialect
}

// NewInventoryRepository construye el adaptador de existencias.
func NewInventoryRepository(q Querier, d Dialect) *InventoryRepo {
	return &InventoryRepo{q: q, d: d}
}

// Create registra la existencia inicial. Un par repetido viola UNIQUE(product_id, warehouse_id).
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at) VALUES (?, ?, ?, ?)`,
		inv.ProductID, inv.WarehouseID, inv.Quantity, formatTime(inv.UpdatedAt),
	)
	if err != nil {
		return r.d.wrap("insert inventory", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	inv.ID = id
	return nil
}

// Get obtiene la existencia de un producto en una bodega.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = ? AND warehouse_id = ?`, productID, warehouseID)
	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap("get inventory", err)
	}
	return inv, nil
}

// ListByProduct lista la existencia de un producto en todas las bodegas.
func (r *InventoryRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Inventory, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = ? ORDER BY id`, productID)
	if err != nil {
		return nil, r.d.wrap("list inventory", err)
	}
	defer rows.Close()
	list := make([]*entity.Inventory, 0)
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInventory(s rowScanner) (*entity.Inventory, error) {
	var inv entity.Inventory
	var updated string
	if err := s.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &updated); err != nil {
		return nil, err
	}
	var err error
	if inv.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &inv, nil
}
