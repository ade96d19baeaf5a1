package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the uniform body for unauthenticated and unexpected failures
type ErrorEnvelope struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewErrorEnvelope builds the envelope for the current request
func NewErrorEnvelope(c *gin.Context, status int, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
	}
}

// AbortWithEnvelope writes the envelope and stops the handler chain
func AbortWithEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorEnvelope(c, status, message))
}
