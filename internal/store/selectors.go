package store

import (
	"sort"
	"sync"

	"cart-service/internal/models"
	"cart-service/internal/quantity"
)

// Selectors derives read models from state snapshots. It carries the
// cart-entity memoization cache, so one Selectors instance is shared by
// all readers of a store.
type Selectors struct {
	mu           sync.Mutex
	entities     map[models.ProductID]entityEntry
	computations int
}

type entityEntry struct {
	product  models.Product
	quantity models.Quantity
	entity   models.CartEntity
}

// NewSelectors creates a Selectors with an empty entity cache. The
// cache is unbounded per product id; the catalog is small.
func NewSelectors() *Selectors {
	return &Selectors{entities: map[models.ProductID]entityEntry{}}
}

// CartQuantity returns the cart quantity for productID and whether it
// is in the cart. Decision logic branches on the second return.
func (sel *Selectors) CartQuantity(state models.RootState, productID models.ProductID) (models.Quantity, bool) {
	return quantity.Lookup(productID, state.Cart)
}

// CartQuantityOrZero is the isomorphic form: absent reads as 0.
func (sel *Selectors) CartQuantityOrZero(state models.RootState, productID models.ProductID) models.Quantity {
	return quantity.LookupOrZero(productID, state.Cart)
}

// CartQuantitySum is the sum of all cart quantities; 0 for an empty
// cart. The sum is order-independent, so map iteration order is fine.
func (sel *Selectors) CartQuantitySum(state models.RootState) models.Quantity {
	var sum models.Quantity
	for _, q := range state.Cart {
		sum += q
	}
	return sum
}

// CartEntity joins the catalog and the cart for one product id. The
// second return is false when the product is unknown or not in the
// cart. Results are memoized per product id on the (product, quantity)
// content pair, so a change in an unrelated slice or an unrelated
// product does not recompute or invalidate this entry.
func (sel *Selectors) CartEntity(state models.RootState, productID models.ProductID) (models.CartEntity, bool) {
	product, ok := state.Products.Entities[productID]
	if !ok {
		return models.CartEntity{}, false
	}

	q, ok := quantity.Lookup(productID, state.Cart)
	if !ok {
		return models.CartEntity{}, false
	}

	sel.mu.Lock()
	defer sel.mu.Unlock()

	if entry, ok := sel.entities[productID]; ok && entry.product == product && entry.quantity == q {
		return entry.entity, true
	}

	sel.computations++
	entity := models.CartEntity{Product: product, Quantity: q}
	sel.entities[productID] = entityEntry{product: product, quantity: q, entity: entity}
	return entity, true
}

// CartEntities resolves every cart key through CartEntity, dropping ids
// whose product is not in the catalog. Keys are sorted so the output is
// deterministic.
func (sel *Selectors) CartEntities(state models.RootState) []models.CartEntity {
	ids := make([]models.ProductID, 0, len(state.Cart))
	for id := range state.Cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entities := make([]models.CartEntity, 0, len(ids))
	for _, id := range ids {
		if entity, ok := sel.CartEntity(state, id); ok {
			entities = append(entities, entity)
		}
	}
	return entities
}

// CartTotalPrice is the sum of price*quantity over the cart entities;
// 0 for an empty cart.
func (sel *Selectors) CartTotalPrice(state models.RootState) int64 {
	var total int64
	for _, entity := range sel.CartEntities(state) {
		total += entity.Price * int64(entity.Quantity)
	}
	return total
}

// Product returns the catalog entry for productID.
func (sel *Selectors) Product(state models.RootState, productID models.ProductID) (models.Product, bool) {
	p, ok := state.Products.Entities[productID]
	return p, ok
}

// Products returns the catalog sorted by product id.
func (sel *Selectors) Products(state models.RootState) []models.Product {
	products := make([]models.Product, 0, len(state.Products.Entities))
	for _, p := range state.Products.Entities {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// IsProductsLoading reports whether a catalog fetch is in flight.
func (sel *Selectors) IsProductsLoading(state models.RootState) bool {
	return state.Products.Loading
}
