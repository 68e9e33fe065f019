// Package handlers contains HTTP request handlers for the blog service.
package handlers

import (
	"errors"
	"strconv"

	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration, login and profile requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=20"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with a unique username and email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} response.Result
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameLength),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrPasswordLength):
			response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailRegistered):
			response.Error(c, err.Error())
		default:
			log.Error().Err(err).Msg("register failed")
			response.Error(c, "registration failed")
		}
		return
	}

	response.Message(c, "registration successful")
}

// Login godoc
// @Summary Log in
// @Description Authenticate and receive a bearer token with the public profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Result
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrUserDisabled),
			errors.Is(err, service.ErrWrongPassword):
			response.Error(c, err.Error())
		default:
			log.Error().Err(err).Msg("login failed")
			response.Error(c, "login failed")
		}
		return
	}

	response.Success(c, "login successful", resp)
}

// Profile godoc
// @Summary Get a user profile
// @Description Return the user's public fields; the password is never included
// @Tags auth
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response.Result
// @Router /api/auth/profile/{userId} [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid user id")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, err.Error())
			return
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		response.Error(c, "failed to load profile")
		return
	}

	response.Data(c, user)
}
