package store

import (
	"context"
	"sync"

	"cart-service/internal/models"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

const (
	actionBuffer       = 256
	subscriptionBuffer = 128
)

// Change pairs a dispatched action with the state it produced. Pairing
// them in one delivery keeps the action stream and the state stream in
// dispatch order relative to each other, which the persistence gating
// depends on.
type Change struct {
	Action models.Action
	State  models.RootState
}

// Subscription is an ordered stream of store changes. Receive from C;
// call Close when done.
type Subscription struct {
	C     chan Change
	store *Store
}

// Close detaches the subscription from the store and drains anything
// still buffered.
func (sub *Subscription) Close() {
	sub.store.unsubscribe(sub)
	for {
		select {
		case <-sub.C:
		default:
			return
		}
	}
}

// Store is the single process-wide state cell. The dispatch loop in Run
// is the only writer; everything else reads snapshots via State or
// requests changes via Dispatch. Delivered states are copy-on-write
// snapshots and must not be mutated by subscribers.
type Store struct {
	mu      sync.RWMutex
	state   models.RootState
	subs    map[*Subscription]struct{}
	actions chan models.Action
	logger  *zap.Logger
}

// New creates a store holding the empty state tree. Run must be started
// before dispatched actions are applied.
func New(logger *zap.Logger) *Store {
	return &Store{
		state:   initialState(),
		subs:    map[*Subscription]struct{}{},
		actions: make(chan models.Action, actionBuffer),
		logger:  logger,
	}
}

// State returns the current state snapshot.
func (s *Store) State() models.RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch queues an action for the reducer loop. Safe for concurrent
// use; actions are applied in the order they are queued.
func (s *Store) Dispatch(action models.Action) {
	s.actions <- action
}

// Subscribe registers a new change subscription. The subscriber sees
// every change applied after registration, in dispatch order.
func (s *Store) Subscribe() *Subscription {
	sub := &Subscription{
		C:     make(chan Change, subscriptionBuffer),
		store: s,
	}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	return sub
}

func (s *Store) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

// Run drives the dispatch loop until ctx is cancelled. Exactly one Run
// per store.
func (s *Store) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case action := <-s.actions:
			s.apply(ctx, action)
		}
	}
}

func (s *Store) apply(ctx context.Context, action models.Action) {
	s.mu.Lock()
	next := reduceRoot(s.state, action)
	s.state = next
	subs := make([]*Subscription, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	util.ActionsDispatchedTotal.WithLabelValues(action.ActionType()).Inc()
	s.logger.Debug("Action applied",
		zap.String("action", action.ActionType()),
		zap.Int("cart_size", len(next.Cart)))

	change := Change{Action: action, State: next}
	for _, sub := range subs {
		select {
		case sub.C <- change:
		case <-ctx.Done():
			return
		}
	}
}
