package entity

import "time"

// Product representa un producto del catálogo. SKU es único en todo el sistema.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Price       float64 // no negativo
	Description string
	CreatedAt   time.Time
}
