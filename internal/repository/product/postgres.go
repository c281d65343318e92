package product

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

func (r *postgresRepo) FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `
SELECT id, slug, name, COALESCE(description, ''), price, is_active, created_at
FROM products
WHERE id = ANY($1) AND is_active
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: find by ids error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Price, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: find by ids rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, slug, name, COALESCE(description, ''), price, is_active, created_at
FROM products
WHERE id = $1 AND is_active
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Price, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (slug, name, description, price, is_active)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    is_active = EXCLUDED.is_active
RETURNING id, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.Slug,
		product.Name,
		product.Description,
		product.Price,
		product.IsActive,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%s error=%v", product.Slug, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted slug=%s id=%d", res.Slug, res.ID)
	return &res, nil
}
