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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create registra un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, query, p.OrderID, money(p.Amount), p.Method, p.Status, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return classify("insert payment", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx,
		`SELECT id, order_id, amount, method, status, created_at FROM payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get payment", err)
	}
	return p, nil
}

// ListByOrder lista los pagos de un pedido.
func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, amount, method, status, created_at
		FROM payments WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, classify("list payments", err)
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

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var amount decimal.Decimal
	if err := row.Scan(&p.ID, &p.OrderID, &amount, &p.Method, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Amount = amount.InexactFloat64()
	return &p, nil
}
