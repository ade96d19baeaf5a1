package handler

import (
	"errors"
	"net/http"

	"accorcia/internal/model"
	"accorcia/internal/service"
	"accorcia/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Creates an account when the invite code matches
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Returns a bearer token for valid credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles POST /api/change-password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Change password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), currentUser(c), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}

// LoadUser resolves the authenticated username into an account.
// It must run after middleware.RequireAuth.
func (h *AuthHandler) LoadUser(c *gin.Context) {
	username, _ := middleware.Username(c)

	user, err := h.service.CurrentUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			middleware.AbortWithEnvelope(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		respondError(c, err)
		c.Abort()
		return
	}

	c.Set(userKey, user)
	c.Next()
}
