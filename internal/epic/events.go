package epic

import (
	"context"

	"cart-service/internal/broker"
	"cart-service/internal/models"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// EventsEpic publishes cart mutations as broker events for downstream
// consumers. Like persistence it is gated behind rehydration, so the
// startup replacement of the cart shows up as a single rehydrated event
// rather than a burst of synthetic mutations. Publishing is
// fire-and-forget.
type EventsEpic struct {
	publisher broker.CartEventPublisher
	logger    *zap.Logger
}

// NewEventsEpic creates the event-publishing epic.
func NewEventsEpic(publisher broker.CartEventPublisher) *EventsEpic {
	return &EventsEpic{
		publisher: publisher,
		logger:    util.GetLogger(),
	}
}

func (e *EventsEpic) Name() string { return "cart-events" }

func (e *EventsEpic) Run(ctx context.Context, changes <-chan store.Change, dispatch Dispatcher) {
	gateOpen := false

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}

			switch a := change.Action.(type) {
			case models.RehydrateCartComplete:
				if gateOpen {
					continue
				}
				gateOpen = true
				e.publish(ctx, models.EventTypeCartRehydrated, func() error {
					return e.publisher.PublishCartRehydrated(ctx, len(change.State.Cart))
				})

			case models.AddProductToCart:
				if !gateOpen {
					continue
				}
				q := change.State.Cart[a.ProductID]
				e.publish(ctx, models.EventTypeCartProductAdded, func() error {
					return e.publisher.PublishCartProductAdded(ctx, a.ProductID, q)
				})

			case models.RemoveProductFromCart:
				if !gateOpen {
					continue
				}
				q := change.State.Cart[a.ProductID]
				e.publish(ctx, models.EventTypeCartProductRemoved, func() error {
					return e.publisher.PublishCartProductRemoved(ctx, a.ProductID, a.Absolute, q)
				})

			case models.ClearCart:
				if !gateOpen {
					continue
				}
				e.publish(ctx, models.EventTypeCartCleared, func() error {
					return e.publisher.PublishCartCleared(ctx)
				})
			}
		}
	}
}

func (e *EventsEpic) publish(ctx context.Context, eventType string, fn func() error) {
	if err := fn(); err != nil {
		util.CartEventFailuresTotal.Inc()
		e.logger.Error("Failed to publish cart event",
			zap.String("type", eventType),
			zap.Error(err))
		return
	}
	util.CartEventsPublishedTotal.WithLabelValues(eventType).Inc()
}
