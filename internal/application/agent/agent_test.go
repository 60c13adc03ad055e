package agent

import (
	"context"
	"path/filepath"
	"strings"
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

// recorder implementa Operations registrando la última llamada; los métodos no
// sobrescritos provocan panic por la interfaz embebida nil.
type recorder struct {
	Operations
	product dto.CreateProductRequest
	item    dto.CreateOrderItemRequest
	id      int64
	called  string
}

func (r *recorder) AddProduct(_ context.Context, in dto.CreateProductRequest) result.Result {
	r.called, r.product = "add_product", in
	return result.Created("Product added", nil)
}

func (r *recorder) AddOrderItem(_ context.Context, in dto.CreateOrderItemRequest) result.Result {
	r.called, r.item = "add_order_item", in
	return result.Created("Order item added", nil)
}

func (r *recorder) GetOrder(_ context.Context, id int64) result.Result {
	r.called, r.id = "get_order", id
	return result.Missing()
}

func (r *recorder) GetOrderItems(_ context.Context, id int64) result.Result {
	r.called, r.id = "get_order_items", id
	return result.OK([]dto.OrderItemResponse{})
}

func (r *recorder) GetPaymentsByOrder(_ context.Context, id int64) result.Result {
	r.called, r.id = "get_payments_by_order", id
	return result.OK([]dto.PaymentResponse{})
}

func TestHandle_AddProductEnrutaConCampos(t *testing.T) {
	rec := &recorder{}
	a := New(rec, logger.Nop())

	res := a.Handle(context.Background(), "add product sku=SKU1 name=mouse price=500 desc=wireless")
	require.Equal(t, result.Success, res.Kind)
	assert.Equal(t, "add_product", rec.called)
	assert.Equal(t, dto.CreateProductRequest{SKU: "SKU1", Name: "mouse", Price: 500, Description: "wireless"}, rec.product)
}

func TestHandle_DisparadorSinDistinguirMayusculas(t *testing.T) {
	rec := &recorder{}
	a := New(rec, logger.Nop())

	res := a.Handle(context.Background(), "ADD Product SKU=Sku-Mixed NAME=Mouse price=12.50 desc=x")
	require.Equal(t, result.Success, res.Kind)
	assert.Equal(t, "Sku-Mixed", rec.product.SKU)
	assert.Equal(t, 12.5, rec.product.Price)
}

func TestHandle_CampoFaltante(t *testing.T) {
	rec := &recorder{}
	a := New(rec, logger.Nop())

	res := a.Handle(context.Background(), "add product sku=SKU1 name=mouse desc=wireless")
	assert.Equal(t, result.MissingField, res.Kind)
	assert.Equal(t, result.CodeMissingField, res.Code)
	assert.Equal(t, "missing field: price", res.Message)
	assert.Empty(t, rec.called)
}

func TestHandle_ValorMalFormado(t *testing.T) {
	rec := &recorder{}
	a := New(rec, logger.Nop())

	for _, line := range []string{
		"add product sku=A name=b price=NaN desc=c",
		"add product sku=A name=b price=abc desc=c",
		"add item order_id=uno product_id=1 qty=2 price=5",
		"get order id=1.5",
	} {
		res := a.Handle(context.Background(), line)
		assert.Equal(t, result.Validation, res.Kind, line)
	}
	assert.Empty(t, rec.called)
}

func TestHandle_ComandoDesconocido(t *testing.T) {
	a := New(&recorder{}, logger.Nop())

	res := a.Handle(context.Background(), "delete everything")
	assert.Equal(t, result.UnknownCommand, res.Kind)
	assert.Equal(t, result.UnknownCommandMessage, res.Message)
}

func TestHandle_PrecedenciaDeDisparadores(t *testing.T) {
	rec := &recorder{}
	a := New(rec, logger.Nop())

	a.Handle(context.Background(), "get order items order_id=3")
	assert.Equal(t, "get_order_items", rec.called)
	assert.EqualValues(t, 3, rec.id)

	a.Handle(context.Background(), "get order id=4")
	assert.Equal(t, "get_order", rec.called)
	assert.EqualValues(t, 4, rec.id)

	a.Handle(context.Background(), "get payments order_id=5")
	assert.Equal(t, "get_payments_by_order", rec.called)

	a.Handle(context.Background(), "add item order_id=1 product_id=2 qty=3 price=4.5")
	assert.Equal(t, dto.CreateOrderItemRequest{OrderID: 1, ProductID: 2, Quantity: 3, Price: 4.5}, rec.item)
}

func TestDefaultRules_SinDisparadoresOcultos(t *testing.T) {
	rules := DefaultRules()
	for i, earlier := range rules {
		assert.Equal(t, fold(earlier.Trigger), earlier.Trigger, "disparador no normalizado")
		for _, later := range rules[i+1:] {
			assert.Falsef(t, strings.Contains(later.Trigger, earlier.Trigger),
				"%q oculta a %q", earlier.Trigger, later.Trigger)
		}
	}
}

func TestExtract(t *testing.T) {
	ex := Extract("add item Order_ID=7 qty=2 qty=9 price= product_id=1", "order_id", "qty", "product_id")
	require.True(t, ex.OK())
	assert.Equal(t, "7", ex.Fields["order_id"])
	assert.Equal(t, "2", ex.Fields["qty"])

	ex = Extract("add item order_id=7 price=", "order_id", "price")
	assert.False(t, ex.OK())
	assert.Equal(t, "price", ex.Missing)
}

// Flujo completo sobre SQLite.
func TestHandle_FlujoPedidoSobreSQLite(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "oms.db")}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()
	ts := tools.New(s.Repos)
	a := New(ts, logger.Nop())

	res := a.Handle(ctx, "add order number=ORD001 status=CREATED")
	require.Equal(t, result.Success, res.Kind, res.Message)

	res = a.Handle(ctx, "add item order_id=1 product_id=1 qty=2 price=500")
	assert.Equal(t, result.Constraint, res.Kind)
	assert.Empty(t, ts.GetOrderItems(ctx, 1).Data)

	require.Equal(t, result.Success, a.Handle(ctx, "add product sku=SKU1 name=mouse price=500 desc=wireless").Kind)
	require.Equal(t, result.Success, a.Handle(ctx, "add item order_id=1 product_id=1 qty=2 price=500").Kind)
	require.Equal(t, result.Success, a.Handle(ctx, "make payment order_id=1 amount=1000 method=upi status=SUCCESS").Kind)
	require.Equal(t, result.Success, a.Handle(ctx, "ship order order_id=1 tracking=TRACK1 status=SHIPPED").Kind)

	found := a.Handle(ctx, "find order number=ORD001")
	require.NotNil(t, found.Data)
	assert.Equal(t, "CREATED", found.Data.(*dto.OrderResponse).Status)

	assert.Len(t, a.Handle(ctx, "get shipments order_id=1").Data, 1)
	assert.Len(t, a.Handle(ctx, "get payments order_id=1").Data, 1)
	assert.Equal(t, result.NotFound, a.Handle(ctx, "get product id=99").Kind)
}
