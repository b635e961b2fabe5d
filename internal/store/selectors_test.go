package store

import (
	"testing"

	"cart-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func stateWith(cart models.CartState, products ...models.Product) models.RootState {
	entities := make(map[models.ProductID]models.Product, len(products))
	for _, p := range products {
		entities[p.ID] = p
	}
	return models.RootState{
		Products: models.ProductState{Entities: entities},
		Cart:     cart,
	}
}

func TestCartQuantity(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(models.CartState{"apple": 3})

	q, ok := sel.CartQuantity(state, "apple")
	assert.True(t, ok)
	assert.Equal(t, models.Quantity(3), q)

	_, ok = sel.CartQuantity(state, "pear")
	assert.False(t, ok)

	assert.Equal(t, models.Quantity(3), sel.CartQuantityOrZero(state, "apple"))
	assert.Equal(t, models.Quantity(0), sel.CartQuantityOrZero(state, "pear"))
}

func TestCartQuantitySum(t *testing.T) {
	sel := NewSelectors()

	assert.Equal(t, models.Quantity(0), sel.CartQuantitySum(stateWith(models.CartState{})))

	state := stateWith(models.CartState{"apple": 3, "pear": 2, "plum": 1})
	assert.Equal(t, models.Quantity(6), sel.CartQuantitySum(state))
}

func TestCartEntitiesOmitUnknownProducts(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(
		models.CartState{"apple": 2, "ghost": 5},
		models.Product{ID: "apple", Name: "Apple", Price: 150},
	)

	entities := sel.CartEntities(state)
	assert.Len(t, entities, 1)
	assert.Equal(t, models.ProductID("apple"), entities[0].ID)
	assert.Equal(t, models.Quantity(2), entities[0].Quantity)
}

func TestCartEntitiesDeterministicOrder(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(
		models.CartState{"pear": 1, "apple": 2, "plum": 3},
		models.Product{ID: "apple", Price: 1},
		models.Product{ID: "pear", Price: 2},
		models.Product{ID: "plum", Price: 3},
	)

	first := sel.CartEntities(state)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sel.CartEntities(state))
	}
	assert.Equal(t, models.ProductID("apple"), first[0].ID)
	assert.Equal(t, models.ProductID("pear"), first[1].ID)
	assert.Equal(t, models.ProductID("plum"), first[2].ID)
}

func TestCartTotalPrice(t *testing.T) {
	sel := NewSelectors()

	assert.Equal(t, int64(0), sel.CartTotalPrice(stateWith(models.CartState{})))

	state := stateWith(
		models.CartState{"apple": 2, "pear": 1},
		models.Product{ID: "apple", Price: 150},
		models.Product{ID: "pear", Price: 200},
	)
	assert.Equal(t, int64(2*150+200), sel.CartTotalPrice(state))
}

func TestCartEntityMemoization(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(
		models.CartState{"apple": 2, "pear": 1},
		models.Product{ID: "apple", Price: 150},
		models.Product{ID: "pear", Price: 200},
	)

	_, ok := sel.CartEntity(state, "apple")
	assert.True(t, ok)
	assert.Equal(t, 1, sel.computations)

	// Same inputs: cache hit.
	_, _ = sel.CartEntity(state, "apple")
	assert.Equal(t, 1, sel.computations)

	// A change to an unrelated product must not invalidate this entry.
	changed := stateWith(
		models.CartState{"apple": 2, "pear": 4},
		models.Product{ID: "apple", Price: 150},
		models.Product{ID: "pear", Price: 200},
	)
	_, _ = sel.CartEntity(changed, "apple")
	assert.Equal(t, 1, sel.computations)

	// A quantity change for the product itself recomputes.
	changed = stateWith(
		models.CartState{"apple": 3, "pear": 4},
		models.Product{ID: "apple", Price: 150},
	)
	entity, _ := sel.CartEntity(changed, "apple")
	assert.Equal(t, 2, sel.computations)
	assert.Equal(t, models.Quantity(3), entity.Quantity)

	// So does a price change.
	changed = stateWith(
		models.CartState{"apple": 3},
		models.Product{ID: "apple", Price: 175},
	)
	entity, _ = sel.CartEntity(changed, "apple")
	assert.Equal(t, 3, sel.computations)
	assert.Equal(t, int64(175), entity.Price)
}

func TestCartEntityAbsent(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(
		models.CartState{"apple": 2},
		models.Product{ID: "pear", Price: 200},
	)

	// In cart but not in catalog.
	_, ok := sel.CartEntity(state, "apple")
	assert.False(t, ok)

	// In catalog but not in cart.
	_, ok = sel.CartEntity(state, "pear")
	assert.False(t, ok)
}

func TestProductsSelectors(t *testing.T) {
	sel := NewSelectors()
	state := stateWith(nil,
		models.Product{ID: "pear", Name: "Pear", Price: 200},
		models.Product{ID: "apple", Name: "Apple", Price: 150},
	)

	products := sel.Products(state)
	assert.Len(t, products, 2)
	assert.Equal(t, models.ProductID("apple"), products[0].ID)
	assert.Equal(t, models.ProductID("pear"), products[1].ID)

	p, ok := sel.Product(state, "apple")
	assert.True(t, ok)
	assert.Equal(t, "Apple", p.Name)

	assert.False(t, sel.IsProductsLoading(state))
	state.Products.Loading = true
	assert.True(t, sel.IsProductsLoading(state))
}
