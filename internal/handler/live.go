package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"accorcia/internal/live"
	"accorcia/internal/model"
	"accorcia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var errUnknownTopic = errors.New("unknown topic")

// LiveHandler upgrades authenticated clients to the live visit channel
type LiveHandler struct {
	hub      *live.Hub
	links    service.LinkServiceInterface
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new LiveHandler; connections are accepted from
// the dashboard origin and from the service's own host
func NewLiveHandler(hub *live.Hub, links service.LinkServiceInterface, dashboardURL string) *LiveHandler {
	h := &LiveHandler{hub: hub, links: links}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(dashboardURL),
	}
	return h
}

// Serve handles GET /ws?token=
// @Summary Live visit notifications
// @Description Websocket carrying visit notifications for the caller's links
// @Tags live
// @Param token query string true "Bearer token"
// @Success 101
// @Failure 401 {object} middleware.ErrorEnvelope
// @Router /ws [get]
func (h *LiveHandler) Serve(c *gin.Context) {
	user := currentUser(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("Websocket upgrade failed")
		return
	}

	log.Debug().Str("username", user.Username).Msg("Live client connected")

	client := live.NewClient(h.hub, conn, h.authorizer(user.ID))
	client.Serve(c.Request.Context())

	log.Debug().Str("username", user.Username).Msg("Live client disconnected")
}

// authorizer allows subscriptions to the topics of links the user owns
func (h *LiveHandler) authorizer(ownerID int64) live.Authorizer {
	return func(ctx context.Context, topic string) error {
		shortCode := strings.TrimPrefix(topic, model.TopicPrefix)
		if shortCode == topic || shortCode == "" {
			return errUnknownTopic
		}
		return h.links.CheckOwner(ctx, ownerID, shortCode)
	}
}

func originChecker(dashboardURL string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == dashboardURL {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
