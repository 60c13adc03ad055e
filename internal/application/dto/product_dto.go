package dto

import "time"

// CreateProductRequest entrada para crear un producto (nombres de la herramienta add_product).
type CreateProductRequest struct {
	SKU         string  `json:"product_sku"`
	Name        string  `json:"product_name"`
	Price       float64 `json:"price"`
	Description string  `json:"desc"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
