package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Could not validate credentials"`
}

func handleError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrMissingToken):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, model.ErrTokenInvalid):
		return http.StatusForbidden, "Could not validate credentials"
	case errors.Is(err, model.ErrIdentityNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, model.ErrAccountInactive):
		return http.StatusBadRequest, "Inactive user"
	case errors.Is(err, model.ErrPrivilegeDenied):
		return http.StatusBadRequest, "The user doesn't have enough privileges"
	case errors.Is(err, model.ErrAuthenticationFailed):
		return http.StatusBadRequest, "Incorrect username or password"
	case errors.Is(err, model.ErrInvalidUserParams):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusBadRequest, "The user with this email or username already exists"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, model.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// Abort writes the mapped error response and stops the handler chain.
// Missing credentials also get the bearer challenge header.
func Abort(c *gin.Context, err error) {
	code, msg := handleError(err)
	if code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, ErrorResponse{Detail: msg})
}
