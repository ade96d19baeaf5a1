package mq

import (
	"context"

	"accorcia/internal/model"
)

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	PublishVisit(ctx context.Context, topic string, evt *model.VisitEvent) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
