package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
}
