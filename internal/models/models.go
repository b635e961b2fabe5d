package models

import "maps"

// ProductID identifies a product in the catalog and is the join key
// between the catalog and the cart.
type ProductID string

// Quantity is the number of units of a product in the cart. While a
// product is present in the cart its quantity is always >= 1.
type Quantity int

// Product represents a product in the catalog
type Product struct {
	ID    ProductID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Price int64     `db:"price" json:"price"`
	Image string    `db:"image" json:"image"`
}

// CartState maps product ids to positive quantities. Key presence means
// "in cart"; absence means "not in cart". Reducers treat it as
// immutable and copy before writing.
type CartState map[ProductID]Quantity

// Clone returns a shallow copy of the cart state.
func (c CartState) Clone() CartState {
	out := make(CartState, len(c))
	maps.Copy(out, c)
	return out
}

// Equal reports whether two cart states hold the same entries.
func (c CartState) Equal(other CartState) bool {
	return maps.Equal(c, other)
}

// ProductState holds the catalog slice: a loading flag and the entity
// map keyed by product id.
type ProductState struct {
	Loading  bool
	Entities map[ProductID]Product
}

// RootState is the whole state tree. Slices are reduced independently;
// joining them is a read-side concern.
type RootState struct {
	Products ProductState
	Cart     CartState
}

// CartEntity is a derived, non-stored join of a product and its cart
// quantity. It exists only as selector output.
type CartEntity struct {
	Product
	Quantity Quantity `json:"quantity"`
}
