package models

// Action types
const (
	ActionTypeClearCart             = "CART_CLEAR"
	ActionTypeAddProductToCart      = "CART_ADD_PRODUCT"
	ActionTypeRemoveProductFromCart = "CART_REMOVE_PRODUCT"
	ActionTypeRehydrateCartNext     = "CART_REHYDRATE_NEXT"
	ActionTypeRehydrateCartComplete = "CART_REHYDRATE_COMPLETE"
	ActionTypeFetchProductsNext     = "PRODUCTS_FETCH_NEXT"
	ActionTypeFetchProductsComplete = "PRODUCTS_FETCH_COMPLETE"
	ActionTypeFetchProductsError    = "PRODUCTS_FETCH_ERROR"
)

// Action is a dispatched state transition request. Reducers switch on
// the concrete type; ActionType is used for logging and metrics labels.
type Action interface {
	ActionType() string
}

// ClearCart resets the cart to empty.
type ClearCart struct{}

func (ClearCart) ActionType() string { return ActionTypeClearCart }

// AddProductToCart adds the product with quantity 1 if absent,
// otherwise increments its quantity.
type AddProductToCart struct {
	ProductID ProductID
}

func (AddProductToCart) ActionType() string { return ActionTypeAddProductToCart }

// RemoveProductFromCart decrements the product's quantity, removing the
// key when it would drop below 1. With Absolute set the key is removed
// unconditionally.
type RemoveProductFromCart struct {
	ProductID ProductID
	Absolute  bool
}

func (RemoveProductFromCart) ActionType() string { return ActionTypeRemoveProductFromCart }

// RehydrateCartNext requests a read of the persisted cart snapshot. It
// does not change state by itself; the rehydrate epic reacts to it.
type RehydrateCartNext struct{}

func (RehydrateCartNext) ActionType() string { return ActionTypeRehydrateCartNext }

// RehydrateCartComplete replaces the cart state wholesale with the
// loaded snapshot. The only transition that can introduce
// externally-sourced cart state.
type RehydrateCartComplete struct {
	Cart CartState
}

func (RehydrateCartComplete) ActionType() string { return ActionTypeRehydrateCartComplete }

// FetchProductsNext requests a catalog fetch and raises the loading flag.
type FetchProductsNext struct{}

func (FetchProductsNext) ActionType() string { return ActionTypeFetchProductsNext }

// FetchProductsComplete replaces the catalog entity map.
type FetchProductsComplete struct {
	Products []Product
}

func (FetchProductsComplete) ActionType() string { return ActionTypeFetchProductsComplete }

// FetchProductsError clears the loading flag, leaving entities as-is.
type FetchProductsError struct {
	Err string
}

func (FetchProductsError) ActionType() string { return ActionTypeFetchProductsError }
