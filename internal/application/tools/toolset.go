// Package tools publica cada operación de registro como una herramienta con
// nombre que devuelve un result.Result. La consumen el despachador de comandos,
// el shell y el servidor HTTP.
package tools

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/result"
	"github.com/jhoicas/oms-agent/internal/application/usecase"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

// Toolset agrupa los casos de uso detrás de la superficie de herramientas.
type Toolset struct {
	products   *usecase.ProductUseCase
	warehouses *usecase.WarehouseUseCase
	inventory  *usecase.InventoryUseCase
	orders     *usecase.OrderUseCase
	shipments  *usecase.ShipmentUseCase
	payments   *usecase.PaymentUseCase
}

// New construye el Toolset sobre los repositorios del almacenamiento abierto.
func New(repos repository.Set) *Toolset {
	return &Toolset{
		products:   usecase.NewProductUseCase(repos.Products),
		warehouses: usecase.NewWarehouseUseCase(repos.Warehouses),
		inventory:  usecase.NewInventoryUseCase(repos.Inventory),
		orders:     usecase.NewOrderUseCase(repos.Orders, repos.OrderItems),
		shipments:  usecase.NewShipmentUseCase(repos.Shipments),
		payments:   usecase.NewPaymentUseCase(repos.Payments),
	}
}

func created[T any](msg string, v *T, err error) result.Result {
	if err != nil {
		return result.FromError(err)
	}
	return result.Created(msg, v)
}

func lookup[T any](v *T, err error) result.Result {
	if err != nil {
		return result.FromError(err)
	}
	return result.Lookup(v)
}

func list[T any](v []T, err error) result.Result {
	if err != nil {
		return result.FromError(err)
	}
	return result.OK(v)
}

// ── Productos ────────────────────────────────────────────────────────────────

func (t *Toolset) AddProduct(ctx context.Context, in dto.CreateProductRequest) result.Result {
	p, err := t.products.Create(ctx, in)
	return created("Product added", p, err)
}

func (t *Toolset) GetProduct(ctx context.Context, id int64) result.Result {
	v, err := t.products.GetByID(ctx, id)
	return lookup(v, err)
}

func (t *Toolset) GetAllProducts(ctx context.Context) result.Result {
	v, err := t.products.List(ctx)
	return list(v, err)
}

// ── Bodegas ──────────────────────────────────────────────────────────────────

func (t *Toolset) AddWarehouse(ctx context.Context, in dto.CreateWarehouseRequest) result.Result {
	w, err := t.warehouses.Create(ctx, in)
	return created("Warehouse added", w, err)
}

func (t *Toolset) GetWarehouse(ctx context.Context, id int64) result.Result {
	v, err := t.warehouses.GetByID(ctx, id)
	return lookup(v, err)
}

func (t *Toolset) GetAllWarehouses(ctx context.Context) result.Result {
	v, err := t.warehouses.List(ctx)
	return list(v, err)
}

// ── Inventario ───────────────────────────────────────────────────────────────

func (t *Toolset) AddInventory(ctx context.Context, in dto.CreateInventoryRequest) result.Result {
	inv, err := t.inventory.Create(ctx, in)
	return created("Inventory added", inv, err)
}

func (t *Toolset) GetInventory(ctx context.Context, productID, warehouseID int64) result.Result {
	v, err := t.inventory.Get(ctx, productID, warehouseID)
	return lookup(v, err)
}

func (t *Toolset) GetInventoryByProduct(ctx context.Context, productID int64) result.Result {
	v, err := t.inventory.ListByProduct(ctx, productID)
	return list(v, err)
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

func (t *Toolset) AddOrder(ctx context.Context, in dto.CreateOrderRequest) result.Result {
	o, err := t.orders.Create(ctx, in)
	return created("Order added", o, err)
}

func (t *Toolset) GetOrder(ctx context.Context, id int64) result.Result {
	v, err := t.orders.GetByID(ctx, id)
	return lookup(v, err)
}

func (t *Toolset) GetOrderByNumber(ctx context.Context, number string) result.Result {
	v, err := t.orders.GetByNumber(ctx, number)
	return lookup(v, err)
}

func (t *Toolset) AddOrderItem(ctx context.Context, in dto.CreateOrderItemRequest) result.Result {
	it, err := t.orders.AddItem(ctx, in)
	return created("Order item added", it, err)
}

func (t *Toolset) GetOrderItems(ctx context.Context, orderID int64) result.Result {
	v, err := t.orders.ListItems(ctx, orderID)
	return list(v, err)
}

// ── Envíos ───────────────────────────────────────────────────────────────────

func (t *Toolset) AddShipment(ctx context.Context, in dto.CreateShipmentRequest) result.Result {
	s, err := t.shipments.Create(ctx, in)
	return created("Shipment added", s, err)
}

func (t *Toolset) GetShipment(ctx context.Context, id int64) result.Result {
	v, err := t.shipments.GetByID(ctx, id)
	return lookup(v, err)
}

func (t *Toolset) GetShipmentsByOrder(ctx context.Context, orderID int64) result.Result {
	v, err := t.shipments.ListByOrder(ctx, orderID)
	return list(v, err)
}

// ── Pagos ────────────────────────────────────────────────────────────────────

func (t *Toolset) AddPayment(ctx context.Context, in dto.CreatePaymentRequest) result.Result {
	p, err := t.payments.Create(ctx, in)
	return created("Payment added", p, err)
}

func (t *Toolset) GetPayment(ctx context.Context, id int64) result.Result {
	v, err := t.payments.GetByID(ctx, id)
	return lookup(v, err)
}

func (t *Toolset) GetPaymentsByOrder(ctx context.Context, orderID int64) result.Result {
	v, err := t.payments.ListByOrder(ctx, orderID)
	return list(v, err)
}
