package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"accorcia/internal/config"
	"accorcia/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes visit notifications to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

var _ ProducerInterface = (*Producer)(nil)

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(0),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// PublishVisit sends a visit notification tagged with its short code
func (p *Producer) PublishVisit(ctx context.Context, topic string, evt *model.VisitEvent) error {
	if p == nil {
		return nil // Producer disabled
	}

	m, err := p.newMessage(topic, evt)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("short_code", evt.ShortCode).
		Msg("Visit notification sent to RocketMQ")

	return nil
}

func (p *Producer) newMessage(topic string, evt *model.VisitEvent) (*primitive.Message, error) {
	bytes, err := json.Marshal(&VisitMessage{Topic: topic, Event: *evt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(p.topic, bytes)
	m.WithTag(evt.ShortCode)
	m.WithKeys([]string{evt.ShortCode})
	return m, nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
