package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/backend-template/internal/api/grpc/middleware"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

const reflectionPrefix = "/grpc.reflection."

// Router builds the gRPC server: the standard health service, open to
// everyone, and server reflection, restricted to superusers.
type Router struct {
	identity       middleware.IdentityService
	healthServer   *health.Server
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	identity middleware.IdentityService,
	healthServer *health.Server,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		identity:       identity,
		healthServer:   healthServer,
		contextManager: contextManager,
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), reflectionPrefix)
}

// Register registers all gRPC services and interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.identity, r.contextManager, r.logger)
	recoveryHandler := recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		r.logger.ErrorContext(ctx, "gRPC handler panicked",
			"panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryHandler),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			recovery.StreamServerInterceptor(recoveryHandler),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}
