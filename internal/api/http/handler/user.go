package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// UserService manages accounts.
type UserService interface {
	CreateUser(ctx context.Context, params model.UserCreate) (model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params model.UserUpdate) (model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

// User handles superuser account management.
type User struct {
	userService UserService
	loc         *time.Location
	logger      *logger.Logger
}

func NewUser(userService UserService, loc *time.Location, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		loc:         loc,
		logger:      logger,
	}
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Param        body  body  UserCreateRequest  true  "New user"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /users [post]
func (h *User) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, fmt.Errorf("%w: %w", model.ErrInvalidUserParams, err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), model.UserCreate{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		Abort(c, err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "User handler: user created",
		"user_id", user.ID)
	c.JSON(http.StatusCreated, newUserResponse(user, h.loc))
}

// Update godoc
// @Summary      Update a user
// @Description  Activate, deactivate, promote or reset the password of a user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Param        id    path  string             true  "User ID"
// @Param        body  body  UserUpdateRequest  true  "Changes"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /users/{id} [patch]
func (h *User) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, fmt.Errorf("%w: %w", model.ErrInvalidUserParams, err))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, model.UserUpdate{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		Abort(c, err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "User handler: user updated",
		"user_id", user.ID)
	c.JSON(http.StatusOK, newUserResponse(user, h.loc))
}

// Get godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *User) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user, h.loc))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Abort(c, fmt.Errorf("%w: invalid id %q", model.ErrInvalidUserParams, c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}
