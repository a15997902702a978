package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/identity/internal/apperrors"
	"github.com/skillsenselab/identity/internal/logger"
	"github.com/skillsenselab/identity/internal/server/middleware"
	"github.com/skillsenselab/identity/internal/service"
	"github.com/skillsenselab/identity/internal/validation"
)

// Handler owns the API route handlers.
type Handler struct {
	auth  *service.AuthService
	users *service.UserService
	log   *logger.Logger
}

// NewHandler constructs the API handler set.
func NewHandler(auth *service.AuthService, users *service.UserService, log *logger.Logger) *Handler {
	return &Handler{
		auth:  auth,
		users: users,
		log:   log.WithComponent("handler"),
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondError(c, err)
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered"})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondError(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Protected handles GET /api/protected, a demo route behind the gate.
func (h *Handler) Protected(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hello %s, you accessed a protected route!", userID),
	})
}

// Profile handles GET /api/profile. The account behind a verified token may
// be gone; that surfaces as 404, not as a trusted identity.
func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User profile fetched successfully",
		"user":    user,
	})
}
