package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/dtroode/backend-template/docs"
	"github.com/dtroode/backend-template/internal/api/http/handler"
	"github.com/dtroode/backend-template/internal/api/http/middleware"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/metrics"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/service"
)

const swaggerModelsExpandDepthCollapsed = -1

// Options are the request-facing settings of the REST API.
type Options struct {
	ProjectName    string
	APIPrefix      string
	LoginRateLimit string
	// TrustedProxies are passed to gin; empty means forwarding headers are
	// ignored when resolving the client IP.
	TrustedProxies []string
	Location       *time.Location
}

// Router builds the REST API.
type Router struct {
	opts           Options
	authService    *service.Auth
	identity       *service.Identity
	health         *service.Health
	tasks          *service.Tasks
	limiterStore   limiter.Store
	metrics        *metrics.Auth
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new REST Router instance. tasks may be nil, in which case the
// task routes are not registered.
func New(
	opts Options,
	authService *service.Auth,
	identity *service.Identity,
	health *service.Health,
	tasks *service.Tasks,
	limiterStore limiter.Store,
	metrics *metrics.Auth,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Router{
		opts:           opts,
		authService:    authService,
		identity:       identity,
		health:         health,
		tasks:          tasks,
		limiterStore:   limiterStore,
		metrics:        metrics,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires middleware and routes into a new gin engine.
func (r *Router) Register() (*gin.Engine, error) {
	logging := middleware.NewLogging(r.logger, r.metrics)
	authenticate := middleware.NewAuthenticate(r.identity, r.contextManager, r.logger)
	loginLimit, err := middleware.NewRateLimit(r.opts.LoginRateLimit, r.limiterStore, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create login rate limit: %w", err)
	}

	e := gin.New()
	if err := e.SetTrustedProxies(r.opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	e.Use(gin.Recovery(), logging.HandleHTTP)

	r.registerDocs(e)
	e.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	healthHandler := handler.NewHealth(r.opts.ProjectName, r.health, r.logger)
	e.GET("/", healthHandler.Root)

	api := e.Group(r.opts.APIPrefix)
	api.GET("/health", healthHandler.Live)
	api.GET("/health/db", healthHandler.Database)
	api.GET("/time", handler.NewTime(r.opts.Location).Current)

	r.registerAuthRoutes(api, authenticate, loginLimit)
	r.registerUserRoutes(api, authenticate)
	r.registerTaskRoutes(api, authenticate)

	return e, nil
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup, authenticate *middleware.Authenticate, loginLimit gin.HandlerFunc) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.opts.Location, r.logger)

	auth := api.Group("/auth")
	auth.POST("/login", loginLimit, authHandler.Login)
	auth.GET("/status", authenticate.RequireAuthenticated(), authHandler.Status)
	auth.GET("/me", authenticate.RequireActive(), authHandler.Me)
	auth.GET("/admin", authenticate.RequireSuperuser(), authHandler.Admin)
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup, authenticate *middleware.Authenticate) {
	userHandler := handler.NewUser(r.authService, r.opts.Location, r.logger)

	users := api.Group("/users", authenticate.RequireSuperuser())
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
}

func (r *Router) registerTaskRoutes(api *gin.RouterGroup, authenticate *middleware.Authenticate) {
	if r.tasks == nil {
		r.logger.Info("HTTP router: task queue disabled, task routes not registered")
		return
	}
	taskHandler := handler.NewTask(r.tasks, r.logger)

	tasks := api.Group("/tasks", authenticate.RequireActive())
	tasks.POST("/test", taskHandler.SubmitTest)
	tasks.GET("/:id", taskHandler.Result)
}

// ConfigureDocs aligns the generated OpenAPI metadata with runtime settings.
// Call it once before serving.
func ConfigureDocs(projectName, apiPrefix string) {
	docs.SwaggerInfo.BasePath = apiPrefix
	docs.SwaggerInfo.Title = projectName + " API"
}

func (r *Router) registerDocs(e *gin.Engine) {
	e.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})
	e.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/openapi.json"),
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		ginSwagger.DefaultModelsExpandDepth(swaggerModelsExpandDepthCollapsed),
		ginSwagger.PersistAuthorization(true),
	))
}
