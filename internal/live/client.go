package live

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 32
)

// Authorizer decides whether a connected user may subscribe to a topic
type Authorizer func(ctx context.Context, topic string) error

// Client is one websocket connection of an authenticated user
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	authorize Authorizer
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps an upgraded connection
func NewClient(hub *Hub, conn *websocket.Conn, authorize Authorizer) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		authorize: authorize,
		send:      make(chan []byte, sendBufferSize),
		done:      make(chan struct{}),
	}
}

// Serve runs the connection until the peer goes away or ctx is cancelled
func (c *Client) Serve(ctx context.Context) {
	go c.writePump()
	go func() {
		select {
		case <-ctx.Done():
			c.close()
		case <-c.done:
		}
	}()
	c.readPump(ctx)
}

func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.hub.Remove(c)
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) readPump(ctx context.Context) {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame ClientFrame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("Live connection closed")
			}
			return
		}
		c.handle(ctx, &frame)
	}
}

func (c *Client) handle(ctx context.Context, frame *ClientFrame) {
	switch frame.Type {
	case FrameSubscribe:
		if err := c.authorize(ctx, frame.Topic); err != nil {
			c.reply(ServerFrame{Type: FrameError, Topic: frame.Topic, Message: err.Error()})
			return
		}
		c.hub.Subscribe(frame.Topic, c)
		c.reply(ServerFrame{Type: FrameSubscribed, Topic: frame.Topic})
	case FrameUnsubscribe:
		c.hub.Unsubscribe(frame.Topic, c)
	default:
		c.reply(ServerFrame{Type: FrameError, Message: "unknown frame type: " + frame.Type})
	}
}

func (c *Client) reply(frame ServerFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	if !c.enqueue(data) {
		log.Debug().Str("type", frame.Type).Msg("Dropping reply for slow subscriber")
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
