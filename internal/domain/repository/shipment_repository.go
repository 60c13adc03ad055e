package repository

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia para envíos.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	GetByID(ctx context.Context, id int64) (*entity.Shipment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.Shipment, error)
}
