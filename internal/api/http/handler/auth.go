package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// AuthService issues access tokens.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (model.AccessToken, error)
}

// Auth handles login and the identity-gated auth endpoints. The gated
// endpoints expect the authenticate middleware to have stored the caller.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	loc            *time.Location
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, loc *time.Location, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		loc:            loc,
		logger:         logger,
	}
}

// Login godoc
// @Summary      Log in with email or username
// @Description  OAuth2 password form, or JSON with identifier (or username) and password.
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  true  "Email or username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *Auth) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		Abort(c, fmt.Errorf("%w: %w", model.ErrInvalidUserParams, err))
		return
	}
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		Abort(c, fmt.Errorf("%w: username and password are required", model.ErrInvalidUserParams))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token.AccessToken, TokenType: token.TokenType})
}

// Me godoc
// @Summary      Current active user
// @Tags         auth
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *Auth) Me(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user, h.loc))
}

// Status godoc
// @Summary      Authentication status
// @Description  Any authenticated user, active or not.
// @Tags         auth
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/status [get]
func (h *Auth) Status(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "authenticated", UserID: user.ID, Username: user.Username})
}

// Admin godoc
// @Summary      Superuser-only check
// @Tags         auth
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Success      200  {object}  AdminResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/admin [get]
func (h *Auth) Admin(c *gin.Context) {
	user, ok := h.caller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AdminResponse{
		Message: "This API is accessible to administrators only",
		AdminUser: AdminUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *Auth) caller(c *gin.Context) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.logger.ErrorContext(c.Request.Context(), "Auth handler: no user in context",
			"path", c.FullPath())
		Abort(c, model.ErrMissingToken)
		return model.User{}, false
	}
	return user, true
}
