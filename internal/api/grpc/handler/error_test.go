package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/backend-template/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
	}{
		{name: "missing token", in: model.ErrMissingToken, wantCode: codes.Unauthenticated},
		{name: "invalid token", in: fmt.Errorf("%w: expired", model.ErrTokenInvalid), wantCode: codes.PermissionDenied},
		{name: "identity gone", in: model.ErrIdentityNotFound, wantCode: codes.NotFound},
		{name: "inactive", in: model.ErrAccountInactive, wantCode: codes.FailedPrecondition},
		{name: "privilege", in: model.ErrPrivilegeDenied, wantCode: codes.FailedPrecondition},
		{name: "dependency", in: fmt.Errorf("%w: db", model.ErrDependencyUnavailable), wantCode: codes.Unavailable},
		{name: "not found", in: model.ErrNotFound, wantCode: codes.NotFound},
		{name: "other", in: errors.New("boom"), wantCode: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st, ok := status.FromError(HandleError(tt.in))
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.NotContains(t, st.Message(), "boom")
		})
	}
}
