package dto

import "time"

// CreateShipmentRequest entrada para registrar un envío.
type CreateShipmentRequest struct {
	OrderID        int64  `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// ShipmentResponse salida de un envío.
type ShipmentResponse struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
