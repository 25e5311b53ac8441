package service

import (
	"context"
	"fmt"

	"github.com/dtroode/backend-template/internal/model"
)

// DatabaseCheck is the name the user store is registered under.
const DatabaseCheck = "database"

// Pinger is implemented by stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker adapts a Pinger to model.HealthChecker.
type PingChecker struct {
	name   string
	pinger Pinger
}

var _ model.HealthChecker = (*PingChecker)(nil)

func NewPingChecker(name string, pinger Pinger) *PingChecker {
	return &PingChecker{name: name, pinger: pinger}
}

func (c *PingChecker) Name() string {
	return c.name
}

func (c *PingChecker) Check(ctx context.Context) error {
	return c.pinger.Ping(ctx)
}

// Health runs dependency checks by name.
type Health struct {
	checkers []model.HealthChecker
}

func NewHealth(checkers ...model.HealthChecker) *Health {
	return &Health{checkers: checkers}
}

// Check runs the checker registered under name.
func (h *Health) Check(ctx context.Context, name string) error {
	for _, c := range h.checkers {
		if c.Name() == name {
			return c.Check(ctx)
		}
	}
	return fmt.Errorf("%w: health checker %q", model.ErrNotFound, name)
}

// CheckAll runs every checker and returns the failures keyed by name.
func (h *Health) CheckAll(ctx context.Context) map[string]error {
	failures := make(map[string]error)
	for _, c := range h.checkers {
		if err := c.Check(ctx); err != nil {
			failures[c.Name()] = err
		}
	}
	return failures
}

// Names lists the registered checkers in registration order.
func (h *Health) Names() []string {
	names := make([]string, 0, len(h.checkers))
	for _, c := range h.checkers {
		names = append(names, c.Name())
	}
	return names
}
