package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre database/sql.
type PaymentRepo struct {
	q Querier
	d Dialect
}

// NewPaymentRepository construye el adaptador de pagos.
func NewPaymentRepository(q Querier, d Dialect) *PaymentRepo {
	return &PaymentRepo{q: q, d: d}
}

// Create registra un pago para un pedido existente.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO payments (order_id, amount, method, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.OrderID, p.Amount, p.Method, p.Status, formatTime(p.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert payment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, order_id, amount, method, status, created_at FROM payments WHERE id = ?`, id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap("get payment", err)
	}
	return p, nil
}

// ListByOrder lista los pagos de un pedido.
func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, order_id, amount, method, status, created_at
		FROM payments WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, r.d.wrap("list payments", err)
	}
	defer rows.Close()
	list := make([]*entity.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPayment(s rowScanner) (*entity.Payment, error) {
	var p entity.Payment
	var created string
	if err := s.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status, &created); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &p, nil
}
