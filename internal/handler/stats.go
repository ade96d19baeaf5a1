package handler

import (
	"net/http"

	"accorcia/internal/model"
	"accorcia/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles visit statistics
type StatsHandler struct {
	service service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// Recent handles GET /api/urls/:code/stats
// @Summary Visits of the last 7 days
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param code path string true "Short code"
// @Success 200 {object} model.LinkStats
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/urls/{code}/stats [get]
func (h *StatsHandler) Recent(c *gin.Context) {
	stats, err := h.service.RecentStats(c.Request.Context(), currentUser(c).ID, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Range handles POST /api/urls/:code/stats/range
// @Summary Visits within a date range
// @Tags stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Short code"
// @Param request body model.DateRangeRequest true "Inclusive date range"
// @Success 200 {object} model.LinkStats
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/urls/{code}/stats/range [post]
func (h *StatsHandler) Range(c *gin.Context) {
	var req model.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	stats, err := h.service.StatsForLink(c.Request.Context(), currentUser(c).ID, c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Account handles POST /api/urls/accountstats
// @Summary Visits across all links of the caller
// @Tags stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DateRangeRequest true "Inclusive date range"
// @Success 200 {object} model.AccountStats
// @Failure 400 {object} ErrorResponse
// @Router /api/urls/accountstats [post]
func (h *StatsHandler) Account(c *gin.Context) {
	var req model.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	stats, err := h.service.StatsForOwner(c.Request.Context(), currentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
