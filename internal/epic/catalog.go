package epic

import (
	"context"

	"cart-service/internal/catalog"
	"cart-service/internal/models"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// CatalogEpic loads the product catalog when a fetch is requested. A
// failed fetch surfaces as a fetch-error action that clears the loading
// flag; existing catalog entries are left in place.
type CatalogEpic struct {
	fetcher catalog.Fetcher
	logger  *zap.Logger
}

// NewCatalogEpic creates the catalog-fetch epic.
func NewCatalogEpic(fetcher catalog.Fetcher) *CatalogEpic {
	return &CatalogEpic{
		fetcher: fetcher,
		logger:  util.GetLogger(),
	}
}

func (e *CatalogEpic) Name() string { return "fetch-products" }

func (e *CatalogEpic) Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			if _, ok := change.Action.(models.FetchProductsNext); !ok {
				continue
			}

			products, err := e.fetcher.FetchProducts(ctx)
			if err != nil {
				util.CatalogFetchFailuresTotal.Inc()
				e.logger.Error("Catalog fetch failed", zap.Error(err))
				dispatch(models.FetchProductsError{Err: err.Error()})
				continue
			}

			util.CatalogFetchesTotal.Inc()
			e.logger.Info("Catalog fetched", zap.Int("product_count", len(products)))
			dispatch(models.FetchProductsComplete{Products: products})
		}
	}
}
