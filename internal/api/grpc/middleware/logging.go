package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/backend-template/internal/logger"
)

// Logging logs gRPC calls and their outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	l.log(ctx, info.FullMethod, start, err)
	return resp, err
}

// HandleGRPCStream is HandleGRPC for streaming calls; the duration covers
// the whole stream.
func (l *Logging) HandleGRPCStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	l.log(ss.Context(), info.FullMethod, start, err)
	return err
}

func (l *Logging) log(ctx context.Context, method string, start time.Time, err error) {
	code := status.Code(err)
	args := []any{
		"method", method,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String(),
	}

	switch code {
	case codes.OK:
		l.logger.InfoContext(ctx, "gRPC request completed", args...)
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		l.logger.ErrorContext(ctx, "gRPC request failed", append(args, "error", err.Error())...)
	default:
		l.logger.WarnContext(ctx, "gRPC request rejected", args...)
	}
}
