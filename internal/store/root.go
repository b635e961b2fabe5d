package store

import "cart-service/internal/models"

// initialState builds the empty state tree.
func initialState() models.RootState {
	return models.RootState{
		Products: emptyProducts(),
		Cart:     emptyCart(),
	}
}

// reduceRoot combines the slice reducers. Each slice is reduced
// independently; cross-slice joins happen in selectors only.
func reduceRoot(state models.RootState, action models.Action) models.RootState {
	return models.RootState{
		Products: reduceProducts(state.Products, action),
		Cart:     reduceCart(state.Cart, action),
	}
}
