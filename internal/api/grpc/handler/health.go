package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/backend-template/internal/logger"
)

// HealthService runs all dependency checks.
type HealthService interface {
	Names() []string
	CheckAll(ctx context.Context) map[string]error
}

// Health mirrors dependency checks into the standard gRPC health service.
// The empty service name reports the server as a whole and is SERVING only
// when every check passes.
type Health struct {
	checks   HealthService
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

func NewHealth(checks HealthService, server *health.Server, interval time.Duration, logger *logger.Logger) *Health {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Health{
		checks:   checks,
		server:   server,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

// Probe runs one round of checks and publishes the results.
func (h *Health) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	failures := h.checks.CheckAll(ctx)

	overall := healthpb.HealthCheckResponse_SERVING
	for _, name := range h.checks.Names() {
		st := healthpb.HealthCheckResponse_SERVING
		if err, failed := failures[name]; failed {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			overall = st
			h.logger.Warn("Health prober: check failed",
				"check", name,
				"error", err.Error())
		}
		h.server.SetServingStatus(name, st)
	}
	h.server.SetServingStatus("", overall)
}

// Run probes until ctx is done, then marks everything NOT_SERVING.
func (h *Health) Run(ctx context.Context) {
	h.Probe(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}
