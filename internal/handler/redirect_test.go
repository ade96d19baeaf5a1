package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"accorcia/internal/mocks"
	"accorcia/internal/service"
)

func newRedirectRouter(h *RedirectHandler) *gin.Engine {
	router := newRouter()
	router.GET("/", h.Home)
	router.GET("/404", h.NotFound)
	router.GET("/:shortCode", h.Redirect)
	return router
}

func TestNewRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRedirectHandler(mocks.NewMockRedirectServiceInterface(ctrl), "/404", "http://dash")
	assert.NotNil(t, handler)
}

func TestRedirectHandler_Redirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRedirectServiceInterface(ctrl)
	router := newRedirectRouter(NewRedirectHandler(mockService, "/404", "http://dash"))

	t.Run("successful redirect uses peer address", func(t *testing.T) {
		mockService.EXPECT().Visit(gomock.Any(), "abc123", "192.0.2.1", "test-agent").Return("https://example.com", nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/abc123", nil)
		req.Header.Set("User-Agent", "test-agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("forwarded for wins", func(t *testing.T) {
		mockService.EXPECT().Visit(gomock.Any(), "abc123", "203.0.113.5", "").Return("https://example.com", nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/abc123", nil)
		req.Header.Set("X-Forwarded-For", " 203.0.113.5 , 10.0.0.1")
		req.Header.Del("User-Agent")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("unknown code goes to not found page", func(t *testing.T) {
		mockService.EXPECT().Visit(gomock.Any(), "nope", gomock.Any(), gomock.Any()).Return("", service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/404", w.Header().Get("Location"))
	})

	t.Run("expired code goes to not found page", func(t *testing.T) {
		mockService.EXPECT().Visit(gomock.Any(), "old001", gomock.Any(), gomock.Any()).Return("", service.ErrLinkExpired)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/old001", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/404", w.Header().Get("Location"))
	})

	t.Run("store failure goes to not found page", func(t *testing.T) {
		mockService.EXPECT().Visit(gomock.Any(), "abc123", gomock.Any(), gomock.Any()).Return("", errors.New("db down"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/abc123", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/404", w.Header().Get("Location"))
	})
}

func TestRedirectHandler_Pages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRedirectRouter(NewRedirectHandler(mocks.NewMockRedirectServiceInterface(ctrl), "/404", "http://dash.example"))

	t.Run("not found page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "http://dash.example")
	})

	t.Run("home page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http://dash.example")
	})
}
