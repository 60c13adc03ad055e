package entity

import "time"

// Order representa un pedido. Status es texto libre (CREATED, PAID, SHIPPED...);
// no se valida ninguna transición.
type Order struct {
	ID          int64
	OrderNumber string
	Status      string
	CreatedAt   time.Time
}

// OrderItem línea de un pedido. Se permiten líneas repetidas del mismo producto.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     float64 // precio unitario
	CreatedAt time.Time
}
