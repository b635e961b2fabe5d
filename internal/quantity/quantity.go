package quantity

import "cart-service/internal/models"

// Lookup returns the quantity stored for productID and whether the
// product is present in the cart at all.
func Lookup(productID models.ProductID, cart models.CartState) (models.Quantity, bool) {
	q, ok := cart[productID]
	return q, ok
}

// LookupOrZero coerces "absent" to 0. Callers that need to branch on
// presence use Lookup instead.
func LookupOrZero(productID models.ProductID, cart models.CartState) models.Quantity {
	return cart[productID]
}

// Increment returns the quantity one above the resolved quantity for
// productID. It does not modify the cart.
func Increment(productID models.ProductID, cart models.CartState) models.Quantity {
	return LookupOrZero(productID, cart) + 1
}

// Decrement returns the quantity one below the resolved quantity for
// productID. No clamping happens here; turning a non-positive result
// into a removal is the reducer's job.
func Decrement(productID models.ProductID, cart models.CartState) models.Quantity {
	return LookupOrZero(productID, cart) - 1
}
