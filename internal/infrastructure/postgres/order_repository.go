package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var (
	_ repository.OrderRepository     = (*OrderRepo)(nil)
	_ repository.OrderItemRepository = (*OrderItemRepo)(nil)
)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `INSERT INTO orders (order_number, status, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, query, o.OrderNumber, o.Status, o.CreatedAt).Scan(&o.ID); err != nil {
		return classify("insert order", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return r.getOne(ctx, "get order",
		`SELECT id, order_number, status, created_at FROM orders WHERE id = $1`, id)
}

// GetByNumber obtiene un pedido por número.
func (r *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return r.getOne(ctx, "get order by number",
		`SELECT id, order_number, status, created_at FROM orders WHERE order_number = $1`, orderNumber)
}

func (r *OrderRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx, query, arg).Scan(&o.ID, &o.OrderNumber, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return &o, nil
}

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador de líneas de pedido.
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// Create agrega una línea al pedido.
func (r *OrderItemRepo) Create(ctx context.Context, it *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query, it.OrderID, it.ProductID, it.Quantity, money(it.Price), it.CreatedAt).Scan(&it.ID)
	if err != nil {
		return classify("insert order item", err)
	}
	return nil
}

// ListByOrder lista las líneas de un pedido.
func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, classify("list order items", err)
	}
	defer rows.Close()
	list := make([]*entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		var price decimal.Decimal
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &price, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Price = price.InexactFloat64()
		list = append(list, &it)
	}
	return list, rows.Err()
}
