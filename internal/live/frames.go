package live

import "encoding/json"

// Frame types exchanged over the live channel
const (
	FrameSubscribe   = "subscribe"
	FrameUnsubscribe = "unsubscribe"
	FrameSubscribed  = "subscribed"
	FrameMessage     = "message"
	FrameError       = "error"
)

// ClientFrame is a request sent by a subscriber
type ClientFrame struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

// ServerFrame is pushed to subscribers
type ServerFrame struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}

func messageFrame(topic string, payload []byte) ([]byte, error) {
	return json.Marshal(ServerFrame{Type: FrameMessage, Topic: topic, Payload: payload})
}
