package entity

import "time"

// Payment pago registrado contra un pedido. Method: UPI, CARD, COD, etc.
type Payment struct {
	ID        int64
	OrderID   int64
	Amount    float64
	Method    string
	Status    string
	CreatedAt time.Time
}
