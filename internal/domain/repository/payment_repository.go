package repository

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id int64) (*entity.Payment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.Payment, error)
}
