package usecase

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

// PaymentUseCase pagos asociados a pedidos. No hay validación de montos contra el pedido.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := finite("amount", in.Amount); err != nil {
		return nil, err
	}
	p := &entity.Payment{
		OrderID:   in.OrderID,
		Amount:    in.Amount,
		Method:    in.Method,
		Status:    in.Status,
		CreatedAt: now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func (uc *PaymentUseCase) GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func (uc *PaymentUseCase) ListByOrder(ctx context.Context, orderID int64) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
