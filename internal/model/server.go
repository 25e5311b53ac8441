package model

import (
	"context"
	"net"
)

// SecurityLayer opens listeners for servers, with or without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a transport that can be started on a listener and stopped.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
