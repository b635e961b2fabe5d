package store

import (
	"cart-service/internal/models"
	"cart-service/internal/quantity"
)

// emptyCart is the initial cart state. Reducers never hand out a nil
// map, so callers can range/index without nil checks.
func emptyCart() models.CartState {
	return models.CartState{}
}

// reduceCart is the cart slice state machine. Pure and total: unknown
// actions return the state unchanged, invalid payloads are no-ops.
// Every stored quantity stays >= 1; a quantity that would drop to 0
// deletes the key instead.
func reduceCart(state models.CartState, action models.Action) models.CartState {
	switch a := action.(type) {
	case models.ClearCart:
		return emptyCart()

	case models.AddProductToCart:
		next := state.Clone()
		next[a.ProductID] = quantity.Increment(a.ProductID, state)
		return next

	case models.RemoveProductFromCart:
		q := quantity.LookupOrZero(a.ProductID, state)
		next := state.Clone()
		delete(next, a.ProductID)

		// Removing an absent product resolves to q == 0 and is a no-op
		// deletion.
		if a.Absolute || q <= 1 {
			return next
		}

		next[a.ProductID] = q - 1
		return next

	case models.RehydrateCartComplete:
		if a.Cart == nil {
			return emptyCart()
		}
		return a.Cart.Clone()
	}

	return state
}
