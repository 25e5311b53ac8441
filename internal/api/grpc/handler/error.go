package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/backend-template/internal/model"
)

// HandleError converts a service error into a gRPC status error.
func HandleError(err error) error {
	switch {
	case errors.Is(err, model.ErrMissingToken):
		return status.Error(codes.Unauthenticated, "not authenticated")
	case errors.Is(err, model.ErrTokenInvalid):
		return status.Error(codes.PermissionDenied, "could not validate credentials")
	case errors.Is(err, model.ErrIdentityNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, model.ErrAccountInactive):
		return status.Error(codes.FailedPrecondition, "inactive user")
	case errors.Is(err, model.ErrPrivilegeDenied):
		return status.Error(codes.FailedPrecondition, "the user doesn't have enough privileges")
	case errors.Is(err, model.ErrDependencyUnavailable):
		return status.Error(codes.Unavailable, "service temporarily unavailable")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
