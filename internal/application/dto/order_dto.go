package dto

import "time"

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateOrderItemRequest entrada para agregar una línea a un pedido.
type CreateOrderItemRequest struct {
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderItemResponse salida de una línea de pedido.
type OrderItemResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
