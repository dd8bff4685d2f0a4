package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galeriaviva/gallery-api/internal/constants"
	"github.com/galeriaviva/gallery-api/internal/dto"
	apierrors "github.com/galeriaviva/gallery-api/internal/errors"
	"github.com/galeriaviva/gallery-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Handle dispatches POST /api/auth on the action field.
func (h *AuthHandler) Handle(c *gin.Context) {
	type AuthRequest struct {
		Action     string `json:"action" binding:"required"`
		Username   string `json:"username"`
		Email      string `json:"email"`
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}

	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	switch req.Action {
	case "register":
		h.register(c, req.Username, req.Email, req.Password)
	case "login":
		identifier := req.Identifier
		if identifier == "" {
			identifier = req.Username
		}
		h.login(c, identifier, req.Password)
	default:
		apierrors.BadRequest(c, "Unknown action")
	}
}

func (h *AuthHandler) register(c *gin.Context, username, email, password string) {
	_, err := h.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
	})
}

func (h *AuthHandler) login(c *gin.Context, identifier, password string) {
	user, token, err := h.authService.Login(services.LoginInput{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    dto.ToUserDTO(*user),
		"token":   token,
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUserExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToIssueToken):
		apierrors.InternalError(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
