package handler

import (
	"errors"
	"net/http"

	"accorcia/internal/service"
	"accorcia/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler serves the public short link and landing pages
type RedirectHandler struct {
	service      service.RedirectServiceInterface
	notFoundPath string
	dashboardURL string
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(service service.RedirectServiceInterface, notFoundPath, dashboardURL string) *RedirectHandler {
	return &RedirectHandler{
		service:      service,
		notFoundPath: notFoundPath,
		dashboardURL: dashboardURL,
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to original URL
// @Description Records the visit and redirects to the original URL, or to the not found page
// @Tags shortlink
// @Param shortCode path string true "Short code"
// @Success 302
// @Router /{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")
	clientIP := util.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)

	target, err := h.service.Visit(c.Request.Context(), shortCode, clientIP, c.Request.UserAgent())
	if err != nil {
		if !errors.Is(err, service.ErrLinkNotFound) && !errors.Is(err, service.ErrLinkExpired) {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Redirect failed")
		}
		c.Redirect(http.StatusFound, h.notFoundPath)
		return
	}

	c.Redirect(http.StatusFound, target)
}

// NotFound handles GET /404
func (h *RedirectHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"dashboardURL": h.dashboardURL,
	})
}

// Home handles GET /
func (h *RedirectHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"dashboardURL": h.dashboardURL,
	})
}
