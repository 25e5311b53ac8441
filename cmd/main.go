// @title           Backend Template API
// @version         1.0
// @description     Backend template with bearer-token authentication. Log in with a username or an email.
// @BasePath        /api/v1
// @securityDefinitions.oauth2.password OAuth2PasswordBearer
// @tokenUrl        /api/v1/auth/login
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"google.golang.org/grpc/health"

	apicontext "github.com/dtroode/backend-template/internal/api/context"
	grpcHandler "github.com/dtroode/backend-template/internal/api/grpc/handler"
	grpcRouter "github.com/dtroode/backend-template/internal/api/grpc/router"
	grpcServer "github.com/dtroode/backend-template/internal/api/grpc/server"
	"github.com/dtroode/backend-template/internal/api/http/middleware"
	httpRouter "github.com/dtroode/backend-template/internal/api/http/router"
	httpServer "github.com/dtroode/backend-template/internal/api/http/server"
	"github.com/dtroode/backend-template/internal/config"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/metrics"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/password"
	"github.com/dtroode/backend-template/internal/queue"
	"github.com/dtroode/backend-template/internal/repository/memory"
	"github.com/dtroode/backend-template/internal/repository/postgres"
	"github.com/dtroode/backend-template/internal/server"
	"github.com/dtroode/backend-template/internal/service"
	"github.com/dtroode/backend-template/internal/timeutil"
	"github.com/dtroode/backend-template/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	loc, err := timeutil.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Fatal("failed to load time zone", "error", err)
	}

	userRepo, closeStore, err := openUserStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStore()

	hasher, err := password.NewBcrypt(cfg.Password.BcryptCost, cfg.Password.Workers)
	if err != nil {
		logger.Fatal("failed to create password hasher", "error", err)
	}
	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		logger.Fatal("failed to create token manager", "error", err)
	}

	authMetrics := metrics.NewAuth()
	tokenService := service.NewTokenService(tokenManager, cfg.JWT.AccessTokenTTL, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, authMetrics, logger)
	identity := service.NewIdentity(userRepo, tokenService, authMetrics, logger)
	ctxMgr := apicontext.NewManager()

	checkers := []model.HealthChecker{service.NewPingChecker(service.DatabaseCheck, userRepo)}

	var (
		tasks        *service.Tasks
		limiterStore limiter.Store
	)
	if cfg.Redis.Addr != "" {
		redisClient, err := queue.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()

		broker := queue.NewBroker(redisClient, cfg.Worker.Queue, cfg.Worker.ResultTTL)
		tasks = service.NewTasks(broker, broker, logger)
		checkers = append(checkers, service.NewPingChecker("redis", broker))

		limiterStore, err = middleware.NewLimiterStore(redisClient)
		if err != nil {
			logger.Fatal("failed to create rate limit store", "error", err)
		}
	} else {
		logger.Info("redis not configured, background tasks disabled")
		limiterStore, err = middleware.NewLimiterStore(nil)
		if err != nil {
			logger.Fatal("failed to create rate limit store", "error", err)
		}
	}
	healthService := service.NewHealth(checkers...)

	fs := cfg.FirstSuperuser
	if _, err := authService.EnsureSuperuser(ctx, fs.Email, fs.Username, fs.Password); err != nil {
		logger.Error("failed to create first superuser", "error", err)
	}

	gin.SetMode(gin.ReleaseMode)
	httpRouter.ConfigureDocs(cfg.ProjectName, cfg.APIV1Prefix)
	engine, err := httpRouter.New(httpRouter.Options{
		ProjectName:    cfg.ProjectName,
		APIPrefix:      cfg.APIV1Prefix,
		LoginRateLimit: cfg.LoginRateLimit,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Location:       loc,
	}, authService, identity, healthService, tasks, limiterStore, authMetrics, ctxMgr, logger).Register()
	if err != nil {
		logger.Fatal("failed to build HTTP router", "error", err)
	}
	restServer := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	healthServer := health.NewServer()
	prober := grpcHandler.NewHealth(healthService, healthServer, cfg.GRPC.HealthInterval, logger)
	go prober.Run(ctx)

	rpcServer := grpcServer.NewGRPCServer(
		grpcRouter.New(identity, healthServer, ctxMgr, logger).Register(),
		fmt.Sprintf(":%s", cfg.GRPC.Port),
	)

	servers := []struct {
		server model.Server
		sl     model.SecurityLayer
	}{
		{restServer, server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)},
		{rpcServer, server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.sl)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openUserStore(ctx context.Context, cfg config.Database) (model.UserStore, func(), error) {
	if cfg.Driver == config.DriverMemory {
		return memory.NewUserRepository(), func() {}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewUserRepository(db), func() { _ = db.Close() }, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
