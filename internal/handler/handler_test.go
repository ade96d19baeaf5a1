package handler

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"accorcia/internal/model"
	"accorcia/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var alice = &model.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"}

// asUser stands in for the authentication chain
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UsernameKey, user.Username)
		c.Set(userKey, user)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())

	tmpl := template.Must(template.New("404.html").Parse(`<h1>Not found</h1><a href="{{.dashboardURL}}">dashboard</a>`))
	template.Must(tmpl.New("home.html").Parse(`<h1>accorcia</h1><a href="{{.dashboardURL}}">dashboard</a>`))
	router.SetHTMLTemplate(tmpl)

	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorEnvelope {
	t.Helper()
	var env middleware.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
