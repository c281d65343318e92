package order

import (
	"context"
	"errors"
	"io"
	"log"

	"shopfront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create inserts the order row and every item snapshot in one
// transaction. Any failure rolls the whole attempt back so a partially
// committed order can never be observed.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
INSERT INTO orders (user_id, status, full_name, email, address, city, postal_code, country, subtotal, shipping, tax, total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at
`
	o := domain.Order{
		UserID:     in.UserID,
		Status:     domain.OrderStatusPending,
		FullName:   in.FullName,
		Email:      in.Email,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Subtotal:   in.Subtotal,
		Shipping:   in.Shipping,
		Tax:        in.Tax,
		Total:      in.Total,
	}
	if err := tx.QueryRow(ctx, orderQuery,
		in.UserID,
		domain.OrderStatusPending,
		in.FullName,
		in.Email,
		in.Address,
		in.City,
		in.PostalCode,
		in.Country,
		in.Subtotal,
		in.Shipping,
		in.Tax,
		in.Total,
	).Scan(&o.ID, &o.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert order error=%v", err)
		return nil, err
	}

	const itemQuery = `
INSERT INTO order_items (order_id, product_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	for _, item := range in.Items {
		it := domain.OrderItem{
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		if err := tx.QueryRow(ctx, itemQuery, o.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity).Scan(&it.ID); err != nil {
			r.logger.Printf("order repo: insert item order_id=%d name=%s error=%v", o.ID, item.Name, err)
			return nil, err
		}
		o.Items = append(o.Items, it)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%d items=%d total=%s", o.ID, len(o.Items), o.Total.StringFixed(2))
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const orderQuery = `
SELECT id, user_id, status, full_name, email, address, city, postal_code, country, subtotal, shipping, tax, total, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.FullName,
		&o.Email,
		&o.Address,
		&o.City,
		&o.PostalCode,
		&o.Country,
		&o.Subtotal,
		&o.Shipping,
		&o.Tax,
		&o.Total,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}

	const itemsQuery = `
SELECT id, order_id, product_id, name, unit_price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
