package entity

import "time"

// Shipment envío asociado a un pedido.
type Shipment struct {
	ID             int64
	OrderID        int64
	TrackingNumber string
	Status         string
	CreatedAt      time.Time
}
