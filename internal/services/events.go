package services

import (
	"context"
	"time"

	"rusty/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher publishes catalog change events. *rabbitmq.Client implements it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event models.Event) error
}

// notifier publishes events best-effort; a nil publisher disables it.
type notifier struct {
	publisher EventPublisher
	logger    *zap.Logger
}

func (n notifier) notify(ctx context.Context, eventType string, entityID int) {
	if n.publisher == nil {
		return
	}
	event := models.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if err := n.publisher.PublishEvent(ctx, event); err != nil {
		n.logger.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.Int("entity_id", entityID),
			zap.Error(err))
	}
}
