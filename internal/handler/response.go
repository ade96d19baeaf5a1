package handler

import (
	"errors"
	"net/http"

	"accorcia/internal/model"
	"accorcia/internal/service"
	"accorcia/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// userKey stores the authenticated account in the gin context
const userKey = "user"

// MessageResponse is returned by operations without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for anticipated client errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP statuses
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidInvite),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidDate):
		return http.StatusBadRequest, true
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, service.ErrLinkNotFound):
		return http.StatusNotFound, true
	}
	return 0, false
}

// respondError writes {"error": ...} for domain errors and the 500 envelope otherwise
func respondError(c *gin.Context, err error) {
	if status, ok := statusFor(err); ok {
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("Request failed")
	middleware.AbortWithEnvelope(c, http.StatusInternalServerError, "Internal server error")
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
}

// currentUser returns the account loaded by AuthHandler.LoadUser
func currentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
