package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/result"
)

// Param describe un argumento de herramienta. Todos los argumentos declarados son requeridos.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Tool entrada del catálogo: nombre, descripción, parámetros y la invocación
// sobre argumentos JSON.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`

	invoke func(ctx context.Context, t *Toolset, args []byte) result.Result
}

func define[T any](name, description string, params []Param, fn func(*Toolset, context.Context, T) result.Result) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Params:      params,
		invoke: func(ctx context.Context, t *Toolset, args []byte) result.Result {
			var in T
			if len(params) > 0 {
				if res, ok := checkArgs(name, params, args); !ok {
					return res
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return result.Invalid(fmt.Sprintf("argumentos inválidos para %s: %v", name, err))
				}
			}
			return fn(t, ctx, in)
		},
	}
}

// checkArgs exige que args sea un objeto JSON con todos los parámetros presentes y no nulos,
// para que un argumento omitido no se convierta en el valor cero.
func checkArgs(name string, params []Param, args []byte) (result.Result, bool) {
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(args)) > 0 {
		if err := json.Unmarshal(args, &raw); err != nil {
			return result.Invalid(fmt.Sprintf("argumentos inválidos para %s: %v", name, err)), false
		}
	}
	for _, param := range params {
		v, ok := raw[param.Name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return result.FieldMissing(param.Name), false
		}
	}
	return result.Result{}, true
}

func p(name, typ string) Param { return Param{Name: name, Type: typ} }

var catalog = []Tool{
	define("add_product", "Add a new product to the catalog",
		[]Param{p("product_sku", "string"), p("product_name", "string"), p("price", "number"), p("desc", "string")},
		(*Toolset).AddProduct),
	define("get_product", "Fetch a product by ID",
		[]Param{p("product_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetProduct(ctx, in.ProductID) }),
	define("get_all_products", "List all products",
		nil,
		func(t *Toolset, ctx context.Context, _ struct{}) result.Result { return t.GetAllProducts(ctx) }),

	define("add_warehouse", "Add a new warehouse",
		[]Param{p("warehouse_name", "string"), p("warehouse_location", "string")},
		(*Toolset).AddWarehouse),
	define("get_warehouse", "Fetch a warehouse by ID",
		[]Param{p("warehouse_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetWarehouse(ctx, in.WarehouseID) }),
	define("get_all_warehouses", "List all warehouses",
		nil,
		func(t *Toolset, ctx context.Context, _ struct{}) result.Result { return t.GetAllWarehouses(ctx) }),

	define("add_inventory", "Record stock of a product in a warehouse",
		[]Param{p("product_id", "integer"), p("warehouse_id", "integer"), p("quantity", "integer")},
		(*Toolset).AddInventory),
	define("get_inventory", "Fetch stock of a product in a warehouse",
		[]Param{p("product_id", "integer"), p("warehouse_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.InventoryKey) result.Result {
			return t.GetInventory(ctx, in.ProductID, in.WarehouseID)
		}),
	define("get_inventory_by_product", "List stock of a product across warehouses",
		[]Param{p("product_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result {
			return t.GetInventoryByProduct(ctx, in.ProductID)
		}),

	define("add_order", "Create a new order",
		[]Param{p("order_number", "string"), p("status", "string")},
		(*Toolset).AddOrder),
	define("get_order", "Fetch an order by ID",
		[]Param{p("order_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetOrder(ctx, in.OrderID) }),
	define("get_order_by_number", "Fetch an order by its order number",
		[]Param{p("order_number", "string")},
		func(t *Toolset, ctx context.Context, in dto.OrderNumberRequest) result.Result {
			return t.GetOrderByNumber(ctx, in.OrderNumber)
		}),
	define("add_order_item", "Add a line item to an order",
		[]Param{p("order_id", "integer"), p("product_id", "integer"), p("quantity", "integer"), p("price", "number")},
		(*Toolset).AddOrderItem),
	define("get_order_items", "List the items of an order",
		[]Param{p("order_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetOrderItems(ctx, in.OrderID) }),

	define("add_shipment", "Record a shipment for an order",
		[]Param{p("order_id", "integer"), p("tracking_number", "string"), p("status", "string")},
		(*Toolset).AddShipment),
	define("get_shipment", "Fetch a shipment by ID",
		[]Param{p("shipment_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetShipment(ctx, in.ShipmentID) }),
	define("get_shipments_by_order", "List the shipments of an order",
		[]Param{p("order_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result {
			return t.GetShipmentsByOrder(ctx, in.OrderID)
		}),

	define("add_payment", "Record a payment for an order",
		[]Param{p("order_id", "integer"), p("amount", "number"), p("method", "string"), p("status", "string")},
		(*Toolset).AddPayment),
	define("get_payment", "Fetch a payment by ID",
		[]Param{p("payment_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result { return t.GetPayment(ctx, in.PaymentID) }),
	define("get_payments_by_order", "List the payments of an order",
		[]Param{p("order_id", "integer")},
		func(t *Toolset, ctx context.Context, in dto.IDRequest) result.Result {
			return t.GetPaymentsByOrder(ctx, in.OrderID)
		}),
}

var byName = func() map[string]Tool {
	m := make(map[string]Tool, len(catalog))
	for _, tool := range catalog {
		m[tool.Name] = tool
	}
	return m
}()

// Catalog devuelve una copia del catálogo en orden estable.
func Catalog() []Tool {
	out := make([]Tool, len(catalog))
	copy(out, catalog)
	return out
}

// Call invoca la herramienta name con argumentos JSON. ok es false si no existe.
func (t *Toolset) Call(ctx context.Context, name string, args []byte) (res result.Result, ok bool) {
	tool, ok := byName[name]
	if !ok {
		return result.Result{}, false
	}
	return tool.invoke(ctx, t, args), true
}
