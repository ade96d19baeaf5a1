package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UsernameKey stores the authenticated username in the gin context
const UsernameKey = "username"

const bearerPrefix = "Bearer "

// TokenValidator resolves the subject of a bearer token
type TokenValidator interface {
	Subject(token string) (string, error)
}

// Authenticate reads the bearer token from the Authorization header.
// A missing or invalid token leaves the request anonymous.
func Authenticate(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, bearerPrefix) {
			authenticate(c, v, strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		}
		c.Next()
	}
}

// AuthenticateQuery reads the token from a query parameter, for clients
// such as browsers opening a websocket that cannot set headers
func AuthenticateQuery(v TokenValidator, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.Query(param); token != "" {
			authenticate(c, v, token)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, v TokenValidator, token string) {
	username, err := v.Subject(token)
	if err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Ignoring invalid token")
		return
	}
	c.Set(UsernameKey, username)
}

// RequireAuth rejects anonymous requests with a 401 envelope
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Username(c); !ok {
			AbortWithEnvelope(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// Username returns the authenticated username, if any
func Username(c *gin.Context) (string, bool) {
	username := c.GetString(UsernameKey)
	return username, username != ""
}
