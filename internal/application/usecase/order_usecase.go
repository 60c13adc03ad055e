package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/domain"
	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos y sus líneas.
type OrderUseCase struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, items repository.OrderItemRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items}
}

// Create crea un pedido. El estado es texto libre.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := required("order_number", in.OrderNumber); err != nil {
		return nil, err
	}
	order := &entity.Order{
		OrderNumber: in.OrderNumber,
		Status:      in.Status,
		CreatedAt:   now(),
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByNumber obtiene un pedido por su número (coincidencia exacta).
func (uc *OrderUseCase) GetByNumber(ctx context.Context, number string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AddItem agrega una línea al pedido. El mismo producto puede repetirse en varias líneas.
func (uc *OrderUseCase) AddItem(ctx context.Context, in dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := finite("price", in.Price); err != nil {
		return nil, err
	}
	item := &entity.OrderItem{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Price:     in.Price,
		CreatedAt: now(),
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toOrderItemResponse(item), nil
}

// ListItems lista las líneas del pedido en orden de inserción.
func (uc *OrderUseCase) ListItems(ctx context.Context, orderID int64) ([]dto.OrderItemResponse, error) {
	list, err := uc.items.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toOrderItemResponse(it))
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func toOrderItemResponse(it *entity.OrderItem) *dto.OrderItemResponse {
	if it == nil {
		return nil
	}
	return &dto.OrderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		CreatedAt: it.CreatedAt,
	}
}
