package agent

import (
	"context"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/result"
)

// Operations superficie de herramientas que invocan las reglas. *tools.Toolset la satisface.
type Operations interface {
	AddProduct(ctx context.Context, in dto.CreateProductRequest) result.Result
	GetProduct(ctx context.Context, id int64) result.Result
	GetAllProducts(ctx context.Context) result.Result
	AddWarehouse(ctx context.Context, in dto.CreateWarehouseRequest) result.Result
	GetWarehouse(ctx context.Context, id int64) result.Result
	GetAllWarehouses(ctx context.Context) result.Result
	AddInventory(ctx context.Context, in dto.CreateInventoryRequest) result.Result
	GetInventory(ctx context.Context, productID, warehouseID int64) result.Result
	GetInventoryByProduct(ctx context.Context, productID int64) result.Result
	AddOrder(ctx context.Context, in dto.CreateOrderRequest) result.Result
	GetOrder(ctx context.Context, id int64) result.Result
	GetOrderByNumber(ctx context.Context, number string) result.Result
	AddOrderItem(ctx context.Context, in dto.CreateOrderItemRequest) result.Result
	GetOrderItems(ctx context.Context, orderID int64) result.Result
	AddShipment(ctx context.Context, in dto.CreateShipmentRequest) result.Result
	GetShipment(ctx context.Context, id int64) result.Result
	GetShipmentsByOrder(ctx context.Context, orderID int64) result.Result
	AddPayment(ctx context.Context, in dto.CreatePaymentRequest) result.Result
	GetPayment(ctx context.Context, id int64) result.Result
	GetPaymentsByOrder(ctx context.Context, orderID int64) result.Result
}

// Rule asocia una frase disparadora con los campos requeridos y la operación.
// Fields se extraen antes de Invoke; si falta alguno Invoke no se ejecuta.
type Rule struct {
	Trigger string
	Fields  []string
	Invoke  func(ctx context.Context, ops Operations, f Fields) result.Result
}

// byID regla de consulta por un único ID entero.
func byID(trigger, key string, get func(Operations, context.Context, int64) result.Result) Rule {
	return Rule{
		Trigger: trigger,
		Fields:  []string{key},
		Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
			id, err := f.Int(key)
			if err != nil {
				return result.FromError(err)
			}
			return get(ops, ctx, id)
		},
	}
}

func addOrder(trigger string) Rule {
	return Rule{
		Trigger: trigger,
		Fields:  []string{"number", "status"},
		Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
			return ops.AddOrder(ctx, dto.CreateOrderRequest{OrderNumber: f.String("number"), Status: f.String("status")})
		},
	}
}

// DefaultRules tabla de reglas en orden de precedencia: gana la primera cuyo
// disparador aparece en el comando. Ningún disparador es subcadena de uno posterior.
func DefaultRules() []Rule {
	return []Rule{
		{
			Trigger: "add product",
			Fields:  []string{"sku", "name", "price", "desc"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				price, err := f.Float("price")
				if err != nil {
					return result.FromError(err)
				}
				return ops.AddProduct(ctx, dto.CreateProductRequest{
					SKU:         f.String("sku"),
					Name:        f.String("name"),
					Price:       price,
					Description: f.String("desc"),
				})
			},
		},
		byID("get product", "id", Operations.GetProduct),
		{
			Trigger: "list products",
			Invoke: func(ctx context.Context, ops Operations, _ Fields) result.Result {
				return ops.GetAllProducts(ctx)
			},
		},

		{
			Trigger: "add warehouse",
			Fields:  []string{"name", "location"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				return ops.AddWarehouse(ctx, dto.CreateWarehouseRequest{Name: f.String("name"), Location: f.String("location")})
			},
		},
		byID("get warehouse", "id", Operations.GetWarehouse),
		{
			Trigger: "list warehouses",
			Invoke: func(ctx context.Context, ops Operations, _ Fields) result.Result {
				return ops.GetAllWarehouses(ctx)
			},
		},

		{
			Trigger: "add inventory",
			Fields:  []string{"product_id", "warehouse_id", "qty"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				in, err := inventoryFields(f)
				if err != nil {
					return result.FromError(err)
				}
				qty, err := f.Int("qty")
				if err != nil {
					return result.FromError(err)
				}
				return ops.AddInventory(ctx, dto.CreateInventoryRequest{ProductID: in.ProductID, WarehouseID: in.WarehouseID, Quantity: qty})
			},
		},
		{
			Trigger: "get inventory",
			Fields:  []string{"product_id", "warehouse_id"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				in, err := inventoryFields(f)
				if err != nil {
					return result.FromError(err)
				}
				return ops.GetInventory(ctx, in.ProductID, in.WarehouseID)
			},
		},
		byID("list inventory", "product_id", Operations.GetInventoryByProduct),

		addOrder("create order"),
		{
			Trigger: "add item",
			Fields:  []string{"order_id", "product_id", "qty", "price"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				var (
					in  dto.CreateOrderItemRequest
					err error
				)
				if in.OrderID, err = f.Int("order_id"); err != nil {
					return result.FromError(err)
				}
				if in.ProductID, err = f.Int("product_id"); err != nil {
					return result.FromError(err)
				}
				if in.Quantity, err = f.Int("qty"); err != nil {
					return result.FromError(err)
				}
				if in.Price, err = f.Float("price"); err != nil {
					return result.FromError(err)
				}
				return ops.AddOrderItem(ctx, in)
			},
		},
		addOrder("add order"),
		byID("get order items", "order_id", Operations.GetOrderItems),
		{
			Trigger: "find order",
			Fields:  []string{"number"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				return ops.GetOrderByNumber(ctx, f.String("number"))
			},
		},
		byID("get order", "id", Operations.GetOrder),

		{
			Trigger: "make payment",
			Fields:  []string{"order_id", "amount", "method", "status"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				orderID, err := f.Int("order_id")
				if err != nil {
					return result.FromError(err)
				}
				amount, err := f.Float("amount")
				if err != nil {
					return result.FromError(err)
				}
				return ops.AddPayment(ctx, dto.CreatePaymentRequest{
					OrderID: orderID,
					Amount:  amount,
					Method:  f.String("method"),
					Status:  f.String("status"),
				})
			},
		},
		byID("get payments", "order_id", Operations.GetPaymentsByOrder),
		byID("get payment", "id", Operations.GetPayment),

		{
			Trigger: "ship order",
			Fields:  []string{"order_id", "tracking", "status"},
			Invoke: func(ctx context.Context, ops Operations, f Fields) result.Result {
				orderID, err := f.Int("order_id")
				if err != nil {
					return result.FromError(err)
				}
				return ops.AddShipment(ctx, dto.CreateShipmentRequest{
					OrderID:        orderID,
					TrackingNumber: f.String("tracking"),
					Status:         f.String("status"),
				})
			},
		},
		byID("get shipments", "order_id", Operations.GetShipmentsByOrder),
		byID("get shipment", "id", Operations.GetShipment),
	}
}

func inventoryFields(f Fields) (dto.InventoryKey, error) {
	var (
		key dto.InventoryKey
		err error
	)
	if key.ProductID, err = f.Int("product_id"); err != nil {
		return key, err
	}
	if key.WarehouseID, err = f.Int("warehouse_id"); err != nil {
		return key, err
	}
	return key, nil
}
