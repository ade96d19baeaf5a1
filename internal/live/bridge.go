package live

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisBridge feeds visit notifications published on Redis into the local hub
type RedisBridge struct {
	hub    *Hub
	pubsub *redis.PubSub
}

// NewRedisBridge wraps a pattern subscription on the link channels
func NewRedisBridge(hub *Hub, pubsub *redis.PubSub) *RedisBridge {
	return &RedisBridge{hub: hub, pubsub: pubsub}
}

// Run forwards messages until ctx is cancelled or the subscription closes
func (b *RedisBridge) Run(ctx context.Context) {
	ch := b.pubsub.Channel()
	log.Info().Msg("Redis live bridge started")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				log.Info().Msg("Redis live bridge stopped")
				return
			}
			b.hub.Broadcast(msg.Channel, []byte(msg.Payload))
		}
	}
}

// Close ends the subscription
func (b *RedisBridge) Close() error {
	return b.pubsub.Close()
}
