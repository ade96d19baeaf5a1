package live

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"accorcia/internal/model"
	"accorcia/internal/mq"

	"github.com/rs/zerolog/log"
)

// Hub tracks the subscribers of every topic on this instance
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Client]struct{})}
}

// Subscribe adds c to the subscribers of topic
func (h *Hub) Subscribe(topic string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.topics[topic]
	if !ok {
		clients = make(map[*Client]struct{})
		h.topics[topic] = clients
	}
	clients[c] = struct{}{}
}

// Unsubscribe removes c from the subscribers of topic
func (h *Hub) Unsubscribe(topic string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unsubscribeLocked(topic, c)
}

// Remove drops c from every topic
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic := range h.topics {
		h.unsubscribeLocked(topic, c)
	}
}

func (h *Hub) unsubscribeLocked(topic string, c *Client) {
	clients, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.topics, topic)
	}
}

// Subscribers returns the number of clients subscribed to topic
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast queues payload for every subscriber of topic and returns how
// many accepted it. Subscribers with a full queue miss the message.
func (h *Hub) Broadcast(topic string, payload []byte) int {
	frame, err := messageFrame(topic, payload)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to encode live frame")
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.topics[topic] {
		if c.enqueue(frame) {
			delivered++
		} else {
			log.Debug().Str("topic", topic).Msg("Dropping message for slow subscriber")
		}
	}
	return delivered
}

// PublishVisit delivers a visit event to the local subscribers of topic
func (h *Hub) PublishVisit(ctx context.Context, topic string, evt *model.VisitEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal visit event: %w", err)
	}
	h.Broadcast(topic, payload)
	return nil
}

// HandleVisitMessage delivers a visit notification received from RocketMQ
func (h *Hub) HandleVisitMessage(ctx context.Context, msg *mq.VisitMessage) error {
	return h.PublishVisit(ctx, msg.Topic, &msg.Event)
}
