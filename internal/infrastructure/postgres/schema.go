package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		sku TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		warehouse_id BIGINT NOT NULL REFERENCES warehouses(id),
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (product_id, warehouse_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity BIGINT NOT NULL CHECK (quantity >= 0),
		price NUMERIC NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		tracking_number TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		amount NUMERIC NOT NULL,
		method TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_order ON shipments(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
}

// Migrate crea las tablas que falten en una sola transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return NewTxRunner(pool).Run(ctx, func(q Querier) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
