package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/backend-template/internal/logger"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			},
			wantCode: codes.OK,
			wantMsg:  `"msg":"gRPC request completed"`,
		},
		{
			name: "client error is a warning",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.PermissionDenied, "nope")
			},
			wantCode: codes.PermissionDenied,
			wantMsg:  `"level":"WARN"`,
		},
		{
			name: "plain error is logged as failure",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Unknown,
			wantMsg:  `"error":"boom"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := NewLogging(logger.NewWithWriter(&buf, 0, "json"))

			info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, "ok", resp)
			}
			assert.Contains(t, buf.String(), tt.wantMsg)
			assert.Contains(t, buf.String(), `"method":"/svc/Method"`)
		})
	}
}

type fakeStream struct {
	grpc.ServerStream
}

func (fakeStream) Context() context.Context { return context.Background() }

func TestLogging_HandleGRPCStream(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, 0, "json"))

	info := &grpc.StreamServerInfo{FullMethod: "/svc/Stream", IsServerStream: true}
	err := lg.HandleGRPCStream(nil, fakeStream{}, info, func(any, grpc.ServerStream) error {
		return status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, buf.String(), `"msg":"gRPC request failed"`)
	assert.Contains(t, buf.String(), `"method":"/svc/Stream"`)
}
