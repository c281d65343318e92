package importer

import (
	"context"
	"strings"
	"testing"

	"shopfront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `slug,name,description,price,active
canvas-backpack,Canvas Backpack,Water-resistant 20L daypack,50.00,true
,,,,
retired-poncho,Retired Poncho,No longer sold,35.00,false
wool-beanie,Wool Beanie,,19.90,`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}

	if repo.items[0].Slug != "canvas-backpack" || repo.items[0].Price.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected product data: %+v", repo.items[0])
	}
	if repo.items[1].IsActive {
		t.Fatalf("expected retired-poncho inactive")
	}
	if !repo.items[2].IsActive {
		t.Fatalf("expected blank active flag to default to true")
	}
}

func TestCSVImporter_BadPrice(t *testing.T) {
	csvData := `slug,name,price
thing,Thing,not-a-price`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for malformed price")
	}
}

func TestCSVImporter_MissingColumns(t *testing.T) {
	csvData := `name,description
Thing,No slug or price here`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing required columns")
	}
}
