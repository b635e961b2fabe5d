package catalog

import (
	"context"

	"cart-service/internal/models"
)

// Fetcher is the catalog capability: a one-shot async load of the full
// product list. It may fail; the caller converts failures into a
// fetch-error action.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
}

// StaticFetcher serves a fixed product list. Used in tests and local
// runs without a database.
type StaticFetcher struct {
	Products []models.Product
	Err      error
}

func (f *StaticFetcher) FetchProducts(ctx context.Context) ([]models.Product, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.Product, len(f.Products))
	copy(out, f.Products)
	return out, nil
}
