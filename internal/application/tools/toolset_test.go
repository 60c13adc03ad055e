package tools_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/oms-agent/internal/application/dto"
	"github.com/jhoicas/oms-agent/internal/application/result"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/internal/infrastructure/store"
	"github.com/jhoicas/oms-agent/pkg/config"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

func newToolset(t *testing.T) (*tools.Toolset, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "oms.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return tools.New(s.Repos), s
}

func TestAddProduct_GetProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	res := ts.AddProduct(ctx, dto.CreateProductRequest{SKU: "SKU1", Name: "mouse", Price: 500, Description: "wireless"})
	require.Equal(t, result.Success, res.Kind, res.Message)
	assert.Equal(t, "Product added", res.Message)
	created := res.Data.(*dto.ProductResponse)

	got := ts.GetProduct(ctx, created.ID)
	require.Equal(t, result.Success, got.Kind)
	p := got.Data.(*dto.ProductResponse)
	assert.Equal(t, "SKU1", p.SKU)
	assert.Equal(t, "mouse", p.Name)
	assert.Equal(t, 500.0, p.Price)
	assert.Equal(t, "wireless", p.Description)
}

func TestAddProduct_SKUDuplicado(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	require.False(t, ts.AddProduct(ctx, dto.CreateProductRequest{SKU: "SKU1", Name: "mouse", Price: 500}).IsError())
	dup := ts.AddProduct(ctx, dto.CreateProductRequest{SKU: "SKU1", Name: "otro", Price: 1})
	assert.Equal(t, result.Constraint, dup.Kind)
	assert.Equal(t, result.CodeConstraint, dup.Code)

	all := ts.GetAllProducts(ctx)
	assert.Len(t, all.Data, 1)
}

func TestGet_RegistroInexistenteEsExitoConDataNula(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	for _, res := range []result.Result{
		ts.GetProduct(ctx, 42),
		ts.GetWarehouse(ctx, 42),
		ts.GetInventory(ctx, 1, 1),
		ts.GetOrder(ctx, 42),
		ts.GetOrderByNumber(ctx, "NOPE"),
		ts.GetShipment(ctx, 42),
		ts.GetPayment(ctx, 42),
	} {
		assert.Equal(t, result.NotFound, res.Kind)
		assert.False(t, res.IsError())
		assert.Nil(t, res.Data)
	}
}

func TestListas_VaciasSerializanComoArreglo(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	for _, res := range []result.Result{
		ts.GetAllProducts(ctx),
		ts.GetAllWarehouses(ctx),
		ts.GetInventoryByProduct(ctx, 1),
		ts.GetOrderItems(ctx, 1),
		ts.GetShipmentsByOrder(ctx, 1),
		ts.GetPaymentsByOrder(ctx, 1),
	} {
		require.Equal(t, result.Success, res.Kind)
		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","data":[]}`, string(b))
	}
}

func TestInventario_ParDuplicadoConservaPrimeraCantidad(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	p := ts.AddProduct(ctx, dto.CreateProductRequest{SKU: "SKU1", Name: "mouse", Price: 500}).Data.(*dto.ProductResponse)
	w := ts.AddWarehouse(ctx, dto.CreateWarehouseRequest{Name: "Main", Location: "NY"}).Data.(*dto.WarehouseResponse)

	require.False(t, ts.AddInventory(ctx, dto.CreateInventoryRequest{ProductID: p.ID, WarehouseID: w.ID, Quantity: 50}).IsError())
	dup := ts.AddInventory(ctx, dto.CreateInventoryRequest{ProductID: p.ID, WarehouseID: w.ID, Quantity: 7})
	assert.Equal(t, result.Constraint, dup.Kind)

	inv := ts.GetInventory(ctx, p.ID, w.ID).Data.(*dto.InventoryResponse)
	assert.EqualValues(t, 50, inv.Quantity)
}

func TestPedido_NumeroDuplicadoYItemSinProducto(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	order := ts.AddOrder(ctx, dto.CreateOrderRequest{OrderNumber: "ORD001", Status: "CREATED"})
	require.Equal(t, result.Success, order.Kind)
	assert.Equal(t, result.Constraint, ts.AddOrder(ctx, dto.CreateOrderRequest{OrderNumber: "ORD001", Status: "X"}).Kind)

	o := order.Data.(*dto.OrderResponse)
	item := ts.AddOrderItem(ctx, dto.CreateOrderItemRequest{OrderID: o.ID, ProductID: 1, Quantity: 2, Price: 500})
	assert.Equal(t, result.Constraint, item.Kind)
	assert.Empty(t, ts.GetOrderItems(ctx, o.ID).Data)
}

func TestCall_ArgumentosJSON(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	res, ok := ts.Call(ctx, "add_warehouse", []byte(`{"warehouse_name":"Main","warehouse_location":"NY"}`))
	require.True(t, ok)
	require.Equal(t, result.Success, res.Kind, res.Message)

	res, ok = ts.Call(ctx, "get_warehouse", []byte(`{"warehouse_id":1}`))
	require.True(t, ok)
	assert.Equal(t, "Main", res.Data.(*dto.WarehouseResponse).Name)

	res, ok = ts.Call(ctx, "get_all_warehouses", nil)
	require.True(t, ok)
	assert.Len(t, res.Data, 1)

	res, ok = ts.Call(ctx, "get_warehouse", []byte(`{"warehouse_id":"uno"}`))
	require.True(t, ok)
	assert.Equal(t, result.Validation, res.Kind)

	_, ok = ts.Call(ctx, "drop_tables", nil)
	assert.False(t, ok)
}

func TestCatalog_NombresUnicos(t *testing.T) {
	seen := map[string]bool{}
	for _, tool := range tools.Catalog() {
		assert.False(t, seen[tool.Name], tool.Name)
		seen[tool.Name] = true
		assert.NotEmpty(t, tool.Description)
	}
	assert.Len(t, seen, 20)
}

func TestStoreCerrado_ResultadoDeAlmacenamiento(t *testing.T) {
	ctx := context.Background()
	ts, s := newToolset(t)
	require.NoError(t, s.Close())

	res := ts.AddOrder(ctx, dto.CreateOrderRequest{OrderNumber: "ORD1", Status: "CREATED"})
	assert.Equal(t, result.Storage, res.Kind)
	assert.Equal(t, result.CodeStorage, res.Code)
}

func TestCall_ArgumentoOmitidoNoSeVuelveCero(t *testing.T) {
	ctx := context.Background()
	ts, _ := newToolset(t)

	res, ok := ts.Call(ctx, "add_product", []byte(`{"product_sku":"A","product_name":"B","desc":"x"}`))
	require.True(t, ok)
	assert.Equal(t, result.MissingField, res.Kind)
	assert.Equal(t, "missing field: price", res.Message)
	assert.Empty(t, ts.GetAllProducts(ctx).Data, "no debe persistir nada")

	res, ok = ts.Call(ctx, "get_product", []byte(`{}`))
	require.True(t, ok)
	assert.Equal(t, result.MissingField, res.Kind)
	assert.Equal(t, "missing field: product_id", res.Message)

	res, ok = ts.Call(ctx, "add_inventory", []byte(`{"product_id":1,"warehouse_id":null,"quantity":3}`))
	require.True(t, ok)
	assert.Equal(t, "missing field: warehouse_id", res.Message)

	res, ok = ts.Call(ctx, "get_order", nil)
	require.True(t, ok)
	assert.Equal(t, "missing field: order_id", res.Message)

	res, ok = ts.Call(ctx, "get_order", []byte(`[1]`))
	require.True(t, ok)
	assert.Equal(t, result.Validation, res.Kind)
}
