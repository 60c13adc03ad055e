package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var (
	_ repository.OrderRepository     = (*OrderRepo)(nil)
	_ repository.OrderItemRepository = (*OrderItemRepo)(nil)
)

// OrderRepo implementación de OrderRepository sobre database/sql.
type OrderRepo struct {
	q Querier
	d Dialect
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(q Querier, d Dialect) *OrderRepo {
	return &OrderRepo{q: q, d: d}
}

// Create persiste un pedido; order_number es único.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO orders (order_number, status, created_at) VALUES (?, ?, ?)`,
		o.OrderNumber, o.Status, formatTime(o.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert order", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	o.ID = id
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	return r.getOne(ctx, "get order",
		`SELECT id, order_number, status, created_at FROM orders WHERE id = ?`, id)
}

// GetByNumber obtiene un pedido por su número.
func (r *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return r.getOne(ctx, "get order by number",
		`SELECT id, order_number, status, created_at FROM orders WHERE order_number = ?`, orderNumber)
}

func (r *OrderRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Order, error) {
	var o entity.Order
	var created string
	err := r.q.QueryRowContext(ctx, query, arg).Scan(&o.ID, &o.OrderNumber, &o.Status, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap(op, err)
	}
	if o.CreatedAt, err = parseTime(created); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

// OrderItemRepo implementación de OrderItemRepository sobre database/sql.
type OrderItemRepo struct {
	q Querier
	d Dialect
}

// NewOrderItemRepository construye el adaptador de líneas de pedido.
func NewOrderItemRepository(q Querier, d Dialect) *OrderItemRepo {
	return &OrderItemRepo{q: q, d: d}
}

// Create agrega una línea; pedido y producto deben existir.
func (r *OrderItemRepo) Create(ctx context.Context, it *entity.OrderItem) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO order_items (order_id, product_id, quantity, price, created_at) VALUES (?, ?, ?, ?, ?)`,
		it.OrderID, it.ProductID, it.Quantity, it.Price, formatTime(it.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert order item", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	it.ID = id
	return nil
}

// ListByOrder lista las líneas de un pedido en orden de inserción.
func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, r.d.wrap("list order items", err)
	}
	defer rows.Close()
	list := make([]*entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		var created string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &created); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if it.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
