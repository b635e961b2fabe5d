package storage

import (
	"context"

	"cart-service/internal/models"
)

// CartStorage is the persistence capability for the cart snapshot.
// GetCart's second return distinguishes "no snapshot" from an empty
// cart. Both calls are one-shot and best-effort: failures never affect
// the in-memory state.
type CartStorage interface {
	GetCart(ctx context.Context) (models.CartState, bool, error)
	SetCart(ctx context.Context, cart models.CartState) error
}

// validSnapshot reports whether a decoded snapshot is a well-formed
// id -> positive-quantity mapping. Anything else is treated as "no
// snapshot" at read time.
func validSnapshot(cart models.CartState) bool {
	for id, q := range cart {
		if id == "" || q < 1 {
			return false
		}
	}
	return true
}
