package broker

import (
	"context"
	"time"

	"cart-service/internal/models"

	"github.com/google/uuid"
)

// CartEventPublisher handles publishing cart domain events. Publishing
// is best-effort: callers log failures and move on.
type CartEventPublisher interface {
	PublishCartCleared(ctx context.Context) error
	PublishCartProductAdded(ctx context.Context, productID models.ProductID, q models.Quantity) error
	PublishCartProductRemoved(ctx context.Context, productID models.ProductID, absolute bool, q models.Quantity) error
	PublishCartRehydrated(ctx context.Context, itemCount int) error
}

// KafkaEventPublisher publishes cart events through a Kafka producer.
type KafkaEventPublisher struct {
	producer *Producer
}

// NewKafkaEventPublisher creates a new Kafka-backed event publisher
func NewKafkaEventPublisher(producer *Producer) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}

// PublishCartCleared publishes a CartCleared event
func (ep *KafkaEventPublisher) PublishCartCleared(ctx context.Context) error {
	event := &models.CartClearedEvent{
		BaseEvent: newBaseEvent(models.EventTypeCartCleared),
	}
	return ep.producer.PublishEvent(ctx, "cart", event)
}

// PublishCartProductAdded publishes a CartProductAdded event
func (ep *KafkaEventPublisher) PublishCartProductAdded(ctx context.Context, productID models.ProductID, q models.Quantity) error {
	event := &models.CartProductAddedEvent{
		BaseEvent: newBaseEvent(models.EventTypeCartProductAdded),
		ProductID: productID,
		Quantity:  q,
	}
	return ep.producer.PublishEvent(ctx, string(productID), event)
}

// PublishCartProductRemoved publishes a CartProductRemoved event
func (ep *KafkaEventPublisher) PublishCartProductRemoved(ctx context.Context, productID models.ProductID, absolute bool, q models.Quantity) error {
	event := &models.CartProductRemovedEvent{
		BaseEvent: newBaseEvent(models.EventTypeCartProductRemoved),
		ProductID: productID,
		Absolute:  absolute,
		Quantity:  q,
	}
	return ep.producer.PublishEvent(ctx, string(productID), event)
}

// PublishCartRehydrated publishes a CartRehydrated event
func (ep *KafkaEventPublisher) PublishCartRehydrated(ctx context.Context, itemCount int) error {
	event := &models.CartRehydratedEvent{
		BaseEvent: newBaseEvent(models.EventTypeCartRehydrated),
		ItemCount: itemCount,
	}
	return ep.producer.PublishEvent(ctx, "cart", event)
}
