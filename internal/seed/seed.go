package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Slug        string
	Name        string
	Description string
	Price       string
	Active      bool
}

// Apply inserts basic catalog data for manual testing. It is idempotent
// via ON CONFLICT on the slug.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Slug:        "canvas-backpack",
			Name:        "Canvas Backpack",
			Description: "Water-resistant 20L daypack",
			Price:       "50.00",
			Active:      true,
		},
		{
			Slug:        "trail-boots",
			Name:        "Trail Boots",
			Description: "Leather hiking boots, wide fit",
			Price:       "250.00",
			Active:      true,
		},
		{
			Slug:        "wool-beanie",
			Name:        "Wool Beanie",
			Description: "Merino wool, one size",
			Price:       "19.90",
			Active:      true,
		},
		{
			Slug:        "retired-poncho",
			Name:        "Retired Poncho",
			Description: "No longer sold",
			Price:       "35.00",
			Active:      false,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (slug, name, description, price, is_active)
VALUES ($1, $2, $3, $4::numeric, $5)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    is_active = EXCLUDED.is_active
`
	_, err := pool.Exec(ctx, q, p.Slug, p.Name, p.Description, p.Price, p.Active)
	return err
}
