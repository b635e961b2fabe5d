package models

import "time"

// Event types
const (
	EventTypeCartCleared        = "CART_CLEARED"
	EventTypeCartProductAdded   = "CART_PRODUCT_ADDED"
	EventTypeCartProductRemoved = "CART_PRODUCT_REMOVED"
	EventTypeCartRehydrated     = "CART_REHYDRATED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent published when the cart is reset
type CartClearedEvent struct {
	BaseEvent
}

// CartProductAddedEvent published when a product is added or its
// quantity incremented
type CartProductAddedEvent struct {
	BaseEvent
	ProductID ProductID `json:"product_id"`
	Quantity  Quantity  `json:"quantity"`
}

// CartProductRemovedEvent published when a product is decremented or
// removed from the cart
type CartProductRemovedEvent struct {
	BaseEvent
	ProductID ProductID `json:"product_id"`
	Absolute  bool      `json:"absolute"`
	Quantity  Quantity  `json:"quantity"`
}

// CartRehydratedEvent published once the persisted snapshot has been
// loaded into the store
type CartRehydratedEvent struct {
	BaseEvent
	ItemCount int `json:"item_count"`
}
