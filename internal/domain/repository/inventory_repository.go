package repository

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
)

// InventoryRepository define el puerto para existencias por producto y bodega.
// Create falla con domain.ErrDuplicate si el par ya existe; no hay upsert.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	Get(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Inventory, error)
}
