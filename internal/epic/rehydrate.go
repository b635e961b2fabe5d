package epic

import (
	"context"

	"cart-service/internal/models"
	"cart-service/internal/storage"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// RehydrateEpic reacts to a rehydrate request by reading the persisted
// cart snapshot and dispatching the completion that replaces the cart
// state. A failed or missing read completes with the empty cart; the
// pipeline never stalls on a storage outage.
type RehydrateEpic struct {
	storage storage.CartStorage
	logger  *zap.Logger
}

// NewRehydrateEpic creates the rehydration epic.
func NewRehydrateEpic(st storage.CartStorage) *RehydrateEpic {
	return &RehydrateEpic{
		storage: st,
		logger:  util.GetLogger(),
	}
}

func (e *RehydrateEpic) Name() string { return "rehydrate-cart" }

// Run handles rehydrate requests sequentially. The request is expected
// to fire once at startup; overlapping requests are simply served in
// order, last completion wins.
func (e *RehydrateEpic) Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			if _, ok := change.Action.(models.RehydrateCartNext); !ok {
				continue
			}
			dispatch(models.RehydrateCartComplete{Cart: e.load(ctx)})
		}
	}
}

func (e *RehydrateEpic) load(ctx context.Context) models.CartState {
	cart, found, err := e.storage.GetCart(ctx)
	switch {
	case err != nil:
		util.CartRehydrationFailuresTotal.Inc()
		e.logger.Error("Cart snapshot read failed, starting with empty cart", zap.Error(err))
		return models.CartState{}
	case !found:
		e.logger.Info("No cart snapshot found, starting with empty cart")
		return models.CartState{}
	}

	util.CartRehydrationsTotal.Inc()
	e.logger.Info("Cart rehydrated", zap.Int("item_count", len(cart)))
	return cart
}
