package handler

import (
	"net/http"

	"accorcia/internal/model"
	"accorcia/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles short link management
type LinkHandler struct {
	service service.LinkServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/urls
// @Summary Create a short link
// @Description Creates a short link with an optional custom code and expiration
// @Tags urls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 200 {object} model.LinkView
// @Failure 400 {object} ErrorResponse
// @Router /api/urls [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.service.Create(c.Request.Context(), currentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// List handles GET /api/urls
// @Summary List short links
// @Tags urls
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.LinkView
// @Router /api/urls [get]
func (h *LinkHandler) List(c *gin.Context) {
	views, err := h.service.ListByOwner(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Edit handles PUT /api/urls/:code
// @Summary Edit a short link
// @Description Overwrites the original URL and expiration; a null expiration clears it
// @Tags urls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Short code"
// @Param request body model.EditLinkRequest true "Edit request"
// @Success 200 {object} model.LinkView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/urls/{code} [put]
func (h *LinkHandler) Edit(c *gin.Context) {
	var req model.EditLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.service.Edit(c.Request.Context(), currentUser(c).ID, c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/urls/:code
// @Summary Delete a short link
// @Description Deletes a short link and all of its visits
// @Tags urls
// @Produce json
// @Security BearerAuth
// @Param code path string true "Short code"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/urls/{code} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), currentUser(c).ID, c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Short link deleted"})
}
