package order

import (
	"context"
	"os"
	"testing"

	"shopfront/internal/db"
	"shopfront/internal/domain"
	"shopfront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "backpack", "50.00")

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, CreateOrderInput{
		FullName:   "Jordan Blake",
		Email:      "jordan@example.com",
		Address:    "7 Elm Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		Subtotal:   decimal.RequireFromString("100.00"),
		Shipping:   decimal.RequireFromString("9.00"),
		Tax:        decimal.RequireFromString("9.00"),
		Total:      decimal.RequireFromString("118.00"),
		Items: []CreateItemInput{
			{ProductID: &productID, Name: "Backpack", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected order id to be assigned")
	}
	if created.Status != domain.OrderStatusPending {
		t.Fatalf("expected status pending, got %s", created.Status)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Total.StringFixed(2) != "118.00" {
		t.Fatalf("expected total 118.00, got %s", got.Total.StringFixed(2))
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got.Items))
	}
	item := got.Items[0]
	if item.Name != "Backpack" || item.Quantity != 2 || item.UnitPrice.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected item snapshot: %+v", item)
	}
	if item.ProductID == nil || *item.ProductID != productID {
		t.Fatalf("expected product id %d, got %+v", productID, item.ProductID)
	}
}

func TestPostgres_CreateRollsBackOnBadItem(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "backpack", "50.00")

	repo := NewPostgres(pool, nil)
	// Second item violates the quantity check constraint; the whole
	// order must roll back.
	_, err := repo.Create(ctx, CreateOrderInput{
		FullName:   "Jordan Blake",
		Email:      "jordan@example.com",
		Address:    "7 Elm Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		Subtotal:   decimal.RequireFromString("100.00"),
		Shipping:   decimal.RequireFromString("9.00"),
		Tax:        decimal.RequireFromString("9.00"),
		Total:      decimal.RequireFromString("118.00"),
		Items: []CreateItemInput{
			{ProductID: &productID, Name: "Backpack", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 2},
			{ProductID: &productID, Name: "Broken", UnitPrice: decimal.RequireFromString("1.00"), Quantity: 0},
		},
	})
	if err == nil {
		t.Fatalf("expected create to fail")
	}

	var orders, items int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orders); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items`).Scan(&items); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if orders != 0 || items != 0 {
		t.Fatalf("expected full rollback, got orders=%d items=%d", orders, items)
	}
}

func TestPostgres_ItemSurvivesProductDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "backpack", "50.00")

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, CreateOrderInput{
		FullName:   "Jordan Blake",
		Email:      "jordan@example.com",
		Address:    "7 Elm Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		Subtotal:   decimal.RequireFromString("50.00"),
		Shipping:   decimal.RequireFromString("9.00"),
		Tax:        decimal.RequireFromString("4.50"),
		Total:      decimal.RequireFromString("63.50"),
		Items: []CreateItemInput{
			{ProductID: &productID, Name: "Backpack", UnitPrice: decimal.RequireFromString("50.00"), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected item to survive product deletion")
	}
	if got.Items[0].ProductID != nil {
		t.Fatalf("expected product id nulled, got %v", *got.Items[0].ProductID)
	}
	if got.Items[0].Name != "Backpack" {
		t.Fatalf("expected frozen name to survive, got %s", got.Items[0].Name)
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

func insertProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, slug, price string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO products (slug, name, description, price, is_active)
		VALUES ($1, $1, '', $2::numeric, TRUE)
		RETURNING id
	`, slug, price).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}
