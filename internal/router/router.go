package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/handler"
	"github.com/noah-isme/study-planner-api/internal/middleware"
	"github.com/noah-isme/study-planner-api/internal/service"
	"github.com/noah-isme/study-planner-api/pkg/config"
	"github.com/noah-isme/study-planner-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/study-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/study-planner-api/pkg/middleware/requestid"
)

// Dependencies are the collaborators the route table binds.
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *service.MetricsService
	Tokens      middleware.TokenValidator
	Auth        *handler.AuthHandler
	Tasks       *handler.TaskHandler
	Events      *handler.EventHandler
	Assignments *handler.AssignmentHandler
	Ops         *handler.MetricsHandler
}

// New builds the gin engine with the middleware chain and every route.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.GET("/health", deps.Ops.Health)
	r.GET("/ready", deps.Ops.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", deps.Ops.Prometheus)
	}
	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix, middleware.Timeout(cfg.HTTP.RequestTimeout))
	authed := middleware.JWT(deps.Tokens)

	auth := api.Group("/auth")
	auth.POST("/register", deps.Auth.Register)
	auth.POST("/login", deps.Auth.Login)
	auth.POST("/refresh", deps.Auth.Refresh)
	auth.POST("/logout", authed, deps.Auth.Logout)
	auth.GET("/me", authed, deps.Auth.Me)

	tasks := api.Group("/tasks", authed)
	tasks.GET("", deps.Tasks.List)
	tasks.POST("", deps.Tasks.Create)
	tasks.GET("/:id", deps.Tasks.Get)
	tasks.PUT("/:id", deps.Tasks.Update)
	tasks.PATCH("/:id", deps.Tasks.Update)
	tasks.DELETE("/:id", deps.Tasks.Delete)

	events := api.Group("/events", authed)
	events.GET("", deps.Events.List)
	events.GET("/export", deps.Events.Export)
	events.POST("", deps.Events.Create)
	events.GET("/:id", deps.Events.Get)
	events.PATCH("/:id", deps.Events.Update)
	events.PUT("/:id", deps.Events.Update)
	events.DELETE("/:id", deps.Events.Delete)

	assignments := api.Group("/assignments", authed)
	assignments.GET("", deps.Assignments.List)
	assignments.GET("/export", deps.Assignments.Export)
	assignments.POST("", deps.Assignments.Create)
	assignments.GET("/:id", deps.Assignments.Get)
	assignments.PUT("/:id", deps.Assignments.Update)
	assignments.PATCH("/:id", deps.Assignments.Update)
	assignments.DELETE("/:id", deps.Assignments.Delete)

	return r
}
