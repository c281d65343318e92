package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected header: slug,name,description,price,active.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts products. Rows with a malformed price
// abort the import; blank rows are skipped.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"slug", "name", "price"} {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing required column %q", col)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, ok, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if !ok {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", product.Slug, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, bool, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	slug := field("slug")
	if slug == "" {
		return domain.Product{}, false, nil
	}

	price, err := decimal.NewFromString(field("price"))
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("row %s: bad price: %w", slug, err)
	}

	active := true
	if raw := field("active"); raw != "" {
		active, err = strconv.ParseBool(raw)
		if err != nil {
			return domain.Product{}, false, fmt.Errorf("row %s: bad active flag: %w", slug, err)
		}
	}

	return domain.Product{
		Slug:        slug,
		Name:        field("name"),
		Description: field("description"),
		Price:       price,
		IsActive:    active,
	}, true, nil
}
