package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/backend-template/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode int
		wantMsg  string
	}{
		{name: "missing token", in: model.ErrMissingToken, wantCode: http.StatusUnauthorized, wantMsg: "Not authenticated"},
		{name: "invalid token wrapped", in: fmt.Errorf("%w: expired", model.ErrTokenInvalid), wantCode: http.StatusForbidden, wantMsg: "Could not validate credentials"},
		{name: "identity not found", in: model.ErrIdentityNotFound, wantCode: http.StatusNotFound, wantMsg: "User not found"},
		{name: "inactive", in: model.ErrAccountInactive, wantCode: http.StatusBadRequest, wantMsg: "Inactive user"},
		{name: "privilege", in: model.ErrPrivilegeDenied, wantCode: http.StatusBadRequest, wantMsg: "The user doesn't have enough privileges"},
		{name: "bad credentials", in: model.ErrAuthenticationFailed, wantCode: http.StatusBadRequest, wantMsg: "Incorrect username or password"},
		{name: "invalid params keeps message", in: fmt.Errorf("%w: username is required", model.ErrInvalidUserParams), wantCode: http.StatusUnprocessableEntity, wantMsg: "invalid user params: username is required"},
		{name: "already exists", in: model.ErrAlreadyExists, wantCode: http.StatusBadRequest, wantMsg: "The user with this email or username already exists"},
		{name: "not found", in: model.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "Not found"},
		{name: "dependency", in: fmt.Errorf("%w: db down", model.ErrDependencyUnavailable), wantCode: http.StatusServiceUnavailable, wantMsg: "Service temporarily unavailable"},
		{name: "other", in: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, msg := handleError(tt.in)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestAbort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantCode      int
		wantChallenge string
	}{
		{name: "missing token challenges", err: model.ErrMissingToken, wantCode: http.StatusUnauthorized, wantChallenge: "Bearer"},
		{name: "invalid token does not", err: model.ErrTokenInvalid, wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := gin.New()
			called := false
			e.GET("/", func(c *gin.Context) { Abort(c, tt.err) }, func(c *gin.Context) { called = true })

			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantChallenge, w.Header().Get("WWW-Authenticate"))
			assert.False(t, called, "chain must stop")

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}
}
