package usecase

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

// ShipmentUseCase envíos asociados a pedidos.
type ShipmentUseCase struct {
	repo repository.ShipmentRepository
}

func NewShipmentUseCase(repo repository.ShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo}
}

// Create registra un envío. El pedido debe existir.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := required("tracking_number", in.TrackingNumber); err != nil {
		return nil, err
	}
	s := &entity.Shipment{
		OrderID:        in.OrderID,
		TrackingNumber: in.TrackingNumber,
		Status:         in.Status,
		CreatedAt:      now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toShipmentResponse(s), nil
}

func (uc *ShipmentUseCase) GetByID(ctx context.Context, id int64) (*dto.ShipmentResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(s), nil
}

func (uc *ShipmentUseCase) ListByOrder(ctx context.Context, orderID int64) ([]dto.ShipmentResponse, error) {
	list, err := uc.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toShipmentResponse(s))
	}
	return out, nil
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	if s == nil {
		return nil
	}
	return &dto.ShipmentResponse{
		ID:             s.ID,
		OrderID:        s.OrderID,
		TrackingNumber: s.TrackingNumber,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}
