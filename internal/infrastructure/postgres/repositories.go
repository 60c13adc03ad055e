package postgres

import "github.com/jhoicas/oms-agent/internal/domain/repository"

// NewRepositories construye el conjunto de repositorios sobre el pool o una tx.
func NewRepositories(q Querier) repository.Set {
	return repository.Set{
		Products:   NewProductRepository(q),
		Warehouses: NewWarehouseRepository(q),
		Inventory:  NewInventoryRepository(q),
		Orders:     NewOrderRepository(q),
		OrderItems: NewOrderItemRepository(q),
		Shipments:  NewShipmentRepository(q),
		Payments:   NewPaymentRepository(q),
	}
}
