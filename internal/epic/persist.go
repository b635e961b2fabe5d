package epic

import (
	"context"

	"cart-service/internal/models"
	"cart-service/internal/storage"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// PersistEpic writes distinct cart states to storage, but only after
// the initial rehydration has completed. Before the gate opens nothing
// is written, so a fresh process can never clobber the persisted
// snapshot with its empty initial state. The change stream is ordered,
// which makes the gating exact:
//
//   - changes before the first rehydrate completion are ignored
//   - duplicates of the previous emitted cart state are skipped, with
//     the rehydrated snapshot as the initial baseline
//   - the first state that survives deduplication is the
//     post-rehydration snapshot and is skipped, not written back
//   - every later distinct cart state is written once, best-effort
type PersistEpic struct {
	storage storage.CartStorage
	logger  *zap.Logger
}

// NewPersistEpic creates the persistence epic.
func NewPersistEpic(st storage.CartStorage) *PersistEpic {
	return &PersistEpic{
		storage: st,
		logger:  util.GetLogger(),
	}
}

func (e *PersistEpic) Name() string { return "persist-cart" }

func (e *PersistEpic) Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher) {
	gateOpen := false
	skippedFirst := false
	var last models.CartState

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}

			if !gateOpen {
				if _, ok := change.Action.(models.RehydrateCartComplete); ok {
					gateOpen = true
					last = change.State.Cart
				}
				continue
			}

			cart := change.State.Cart
			if cart.Equal(last) {
				continue
			}
			last = cart

			if !skippedFirst {
				skippedFirst = true
				continue
			}

			if err := e.storage.SetCart(ctx, cart); err != nil {
				util.CartPersistFailuresTotal.Inc()
				// In-memory state stays authoritative; the next
				// distinct state attempts another write.
				e.logger.Error("Cart snapshot write failed", zap.Error(err))
				continue
			}

			util.CartPersistWritesTotal.Inc()
			e.logger.Debug("Cart snapshot written", zap.Int("item_count", len(cart)))
		}
	}
}
