package entity

import "time"

// Inventory es la existencia de un producto en una bodega.
// El par (ProductID, WarehouseID) es único.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	UpdatedAt   time.Time
}
