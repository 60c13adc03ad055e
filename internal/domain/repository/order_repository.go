package repository

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
}

// OrderItemRepository define el puerto de persistencia para líneas de pedido.
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
}
