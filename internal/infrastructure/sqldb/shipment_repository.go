package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository sobre database/sql.
type ShipmentRepo struct {
	q Querier
	d Dialect
}

// NewShipmentRepository construye el adaptador de envíos.
func NewShipmentRepository(q Querier, d Dialect) *ShipmentRepo {
	return &ShipmentRepo{q: q, d: d}
}

// Create registra un envío para un pedido existente.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO shipments (order_id, tracking_number, status, created_at) VALUES (?, ?, ?, ?)`,
		s.OrderID, s.TrackingNumber, s.Status, formatTime(s.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert shipment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	s.ID = id
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Shipment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, order_id, tracking_number, status, created_at FROM shipments WHERE id = ?`, id)
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap("get shipment", err)
	}
	return s, nil
}

// ListByOrder lista los envíos de un pedido.
func (r *ShipmentRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.Shipment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, order_id, tracking_number, status, created_at
		FROM shipments WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, r.d.wrap("list shipments", err)
	}
	defer rows.Close()
	list := make([]*entity.Shipment, 0)
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanShipment(sc rowScanner) (*entity.Shipment, error) {
	var s entity.Shipment
	var created string
	if err := sc.Scan(&s.ID, &s.OrderID, &s.TrackingNumber, &s.Status, &created); err != nil {
		return nil, err
	}
	var err error
	if s.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &s, nil
}
