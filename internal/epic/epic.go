package epic

import (
	"context"
	"sync"
	"time"

	"cart-service/internal/models"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// Dispatcher feeds follow-up actions back into the store.
type Dispatcher func(models.Action)

// Epic is an effect coordinator: it consumes the store's ordered change
// stream and reacts with follow-up dispatches or external I/O. Run
// returns when the change stream is exhausted or ctx is cancelled.
type Epic interface {
	Name() string
	Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher)
}

// Runner spawns one goroutine per epic, each with its own store
// subscription and its own recover boundary, so a panicking epic never
// takes its siblings down. A recovered epic is resubscribed and
// restarted.
type Runner struct {
	store  *store.Store
	epics  []Epic
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewRunner creates a runner for the given epics.
func NewRunner(st *store.Store, epics ...Epic) *Runner {
	return &Runner{
		store:  st,
		epics:  epics,
		logger: util.GetLogger(),
	}
}

// Start subscribes and launches every epic. Subscriptions are created
// before Start returns, so actions dispatched afterwards are guaranteed
// to be observed by all epics.
func (r *Runner) Start(ctx context.Context) {
	for _, e := range r.epics {
		sub := r.store.Subscribe()
		r.wg.Add(1)
		go r.drive(ctx, e, sub)
	}
}

// Wait blocks until every epic has stopped.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) drive(ctx context.Context, e Epic, sub *store.Subscription) {
	defer r.wg.Done()
	defer sub.Close()

	for ctx.Err() == nil {
		if r.runOnce(ctx, e, sub) {
			return
		}
		// Restarting after a panic; don't spin if the epic dies
		// immediately every time.
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

// runOnce runs the epic until it returns normally. A panic is recovered
// and reported; the return value tells the driver whether the epic
// finished cleanly.
func (r *Runner) runOnce(ctx context.Context, e Epic, sub *store.Subscription) (done bool) {
	defer func() {
		if rec := recover(); rec != nil {
			util.EpicPanicsTotal.WithLabelValues(e.Name()).Inc()
			r.logger.Error("Epic panicked, restarting",
				zap.String("epic", e.Name()),
				zap.Any("panic", rec))
			done = false
		}
	}()

	e.Run(ctx, sub.C, r.store.Dispatch)
	return true
}
