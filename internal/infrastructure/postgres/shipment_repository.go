package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de envíos.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create registra un envío.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (order_id, tracking_number, status, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.OrderID, s.TrackingNumber, s.Status, s.CreatedAt).Scan(&s.ID); err != nil {
		return classify("insert shipment", err)
	}
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Shipment, error) {
	var s entity.Shipment
	err := r.q.QueryRow(ctx,
		`SELECT id, order_id, tracking_number, status, created_at FROM shipments WHERE id = $1`, id,
	).Scan(&s.ID, &s.OrderID, &s.TrackingNumber, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get shipment", err)
	}
	return &s, nil
}

// ListByOrder lista los envíos de un pedido.
func (r *ShipmentRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, tracking_number, status, created_at
		FROM shipments WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, classify("list shipments", err)
	}
	defer rows.Close()
	list := make([]*entity.Shipment, 0)
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.OrderID, &s.TrackingNumber, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
