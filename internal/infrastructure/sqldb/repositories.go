package sqldb

import "github.com/jhoicas/oms-agent/internal/domain/repository"

// NewRepositories construye el conjunto de repositorios sobre q (pool o tx).
func NewRepositories(q Querier, d Dialect) repository.Set {
	return repository.Set{
		Products:   NewProductRepository(q, d),
		Warehouses: NewWarehouseRepository(q, d),
		Inventory:  NewInventoryRepository(q, d),
		Orders:     NewOrderRepository(q, d),
		OrderItems: NewOrderItemRepository(q, d),
		Shipments:  NewShipmentRepository(q, d),
		Payments:   NewPaymentRepository(q, d),
	}
}
