package repository

// Set agrupa los repositorios de un mismo backend. Lo construye el adaptador de
// almacenamiento y se inyecta en los casos de uso.
type Set struct {
	Products   ProductRepository
	Warehouses WarehouseRepository
	Inventory  InventoryRepository
	Orders     OrderRepository
	OrderItems OrderItemRepository
	Shipments  ShipmentRepository
	Payments   PaymentRepository
}
