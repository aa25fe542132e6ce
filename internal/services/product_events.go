package services

import (
	"context"
	"time"

	"inventory/internal/dto"
)

// Routing keys for product lifecycle events.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductEvent is the message body published after a product changes.
type ProductEvent struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	ProductID  uint            `json:"productId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Product    *dto.OutProduct `json:"product,omitempty"`
}

// EventPublisher delivers serialized events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
