package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/oms-agent/internal/domain/entity"
	"github.com/jhoicas/oms-agent/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre database/sql.
type ProductRepo struct {
	q Querier
	d Dialect
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier, d Dialect) *ProductRepo {
	return &ProductRepo{q: q, d: d}
}

// Create inserta el producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO products (sku, name, price, description, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.SKU, p.Name, p.Price, p.Description, formatTime(p.CreatedAt),
	)
	if err != nil {
		return r.d.wrap("insert product", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, sku, name, price, description, created_at FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.d.wrap("get product", err)
	}
	return p, nil
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, sku, name, price, description, created_at FROM products ORDER BY id`)
	if err != nil {
		return nil, r.d.wrap("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(s rowScanner) (*entity.Product, error) {
	var p entity.Product
	var created string
	if err := s.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Description, &created); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &p, nil
}
