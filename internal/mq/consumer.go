package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"accorcia/internal/config"
	"accorcia/pkg/util"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// VisitHandler is the handler for visit notification messages
type VisitHandler func(ctx context.Context, msg *VisitMessage) error

// Consumer receives visit notifications from RocketMQ. Every instance
// consumes in broadcasting mode so each one sees every notification.
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler VisitHandler
	started bool
}

var _ ConsumerInterface = (*Consumer)(nil)

// NewConsumer creates a new RocketMQ broadcasting consumer
func NewConsumer(cfg *config.RocketMQConfig, handler VisitHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.BroadCasting),
		consumer.WithConsumeFromWhere(consumer.ConsumeFromLastOffset),
		consumer.WithGroupName(cfg.Group),
		consumer.WithInstance(util.GenerateUUID()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	if err := c.client.Subscribe(c.topic, consumer.MessageSelector{}, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume delivers each message to the handler. Notifications are
// best effort, so bad messages and handler errors are logged and skipped.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var visit VisitMessage
		if err := json.Unmarshal(msg.Body, &visit); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Failed to unmarshal message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("short_code", visit.Event.ShortCode).
			Msg("Processing visit notification")

		if c.handler != nil {
			if err := c.handler(ctx, &visit); err != nil {
				log.Warn().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
