package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"shopfront/internal/db"
	"shopfront/internal/domain"
	"shopfront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func TestPostgres_FindActiveByIDs(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	active, err := repo.Upsert(ctx, domain.Product{
		Slug: "backpack", Name: "Backpack", Price: decimal.RequireFromString("50.00"), IsActive: true,
	})
	if err != nil {
		t.Fatalf("upsert active: %v", err)
	}
	inactive, err := repo.Upsert(ctx, domain.Product{
		Slug: "retired", Name: "Retired", Price: decimal.RequireFromString("35.00"), IsActive: false,
	})
	if err != nil {
		t.Fatalf("upsert inactive: %v", err)
	}

	got, err := repo.FindActiveByIDs(ctx, []int64{active.ID, inactive.ID, 99999})
	if err != nil {
		t.Fatalf("FindActiveByIDs: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the active product, got %d", len(got))
	}
	if got[0].ID != active.ID || got[0].Price.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected product: %+v", got[0])
	}

	empty, err := repo.FindActiveByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("FindActiveByIDs empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no products for empty id set")
	}
}

func TestPostgres_GetActiveByID(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	inactive, err := repo.Upsert(ctx, domain.Product{
		Slug: "retired", Name: "Retired", Price: decimal.RequireFromString("35.00"), IsActive: false,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := repo.GetActiveByID(ctx, inactive.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
	if _, err := repo.GetActiveByID(ctx, 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing product, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
