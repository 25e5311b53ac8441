package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/backend-template/internal/testutil"
)

type checksStub struct {
	failures map[string]error
}

func (s *checksStub) Names() []string {
	return []string{"database", "redis"}
}

func (s *checksStub) CheckAll(context.Context) map[string]error {
	return s.failures
}

func servingStatus(t *testing.T, hs *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_Probe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		failures    map[string]error
		wantOverall healthpb.HealthCheckResponse_ServingStatus
		wantDB      healthpb.HealthCheckResponse_ServingStatus
		wantRedis   healthpb.HealthCheckResponse_ServingStatus
	}{
		{
			name:        "all healthy",
			wantOverall: healthpb.HealthCheckResponse_SERVING,
			wantDB:      healthpb.HealthCheckResponse_SERVING,
			wantRedis:   healthpb.HealthCheckResponse_SERVING,
		},
		{
			name:        "database down",
			failures:    map[string]error{"database": errors.New("connection refused")},
			wantOverall: healthpb.HealthCheckResponse_NOT_SERVING,
			wantDB:      healthpb.HealthCheckResponse_NOT_SERVING,
			wantRedis:   healthpb.HealthCheckResponse_SERVING,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hs := health.NewServer()
			h := NewHealth(&checksStub{failures: tt.failures}, hs, time.Second, testutil.MakeNoopLogger())
			h.Probe(context.Background())

			assert.Equal(t, tt.wantOverall, servingStatus(t, hs, ""))
			assert.Equal(t, tt.wantDB, servingStatus(t, hs, "database"))
			assert.Equal(t, tt.wantRedis, servingStatus(t, hs, "redis"))
		})
	}
}

func TestHealth_Run_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	hs := health.NewServer()
	h := NewHealth(&checksStub{}, hs, 10*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "database"})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, hs, ""))
}
