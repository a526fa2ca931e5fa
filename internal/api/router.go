package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/access"
	"github.com/freelancehub/marketplace-api/internal/api/handler"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/service"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Access control ---
	routes := access.NewRouteTable(cfg.Access.APIRoutes, cfg.Access.AuthRoutes)
	sessions := redisdb.NewSessionStore(rdb)
	gate := access.NewGatekeeper(routes, sessions, cfg.Access.LandingPath, cfg.Access.LoginPath)
	e.Use(middleware.SessionGate(gate, routes))

	// --- Dependencies ---
	sessionTTL := time.Duration(cfg.Access.SessionTTLMinutes) * time.Minute
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, sessionTTL, log)
	authHandler := handler.NewAuthHandler(authService, sessionTTL)
	projectHandler := handler.NewProjectHandler(projectRepo, userRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)

	// --- Auth surfaces (anonymous) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected browser surfaces (session gate enforces auth) ---
	e.GET(cfg.Access.LandingPath, authHandler.Me)
	e.POST("/logout", authHandler.Logout)
	e.POST("/projects", projectHandler.Create)
	e.GET("/projects/:id", projectHandler.Get)
	e.POST("/projects/:id/invite", projectHandler.Invite)
	e.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// --- API surfaces (bearer token, gate bypassed by route class) ---
	apiAuth := middleware.Auth(cfg.JWTSecret)
	active := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleCompany, domain.RoleProvider)

	v1 := e.Group("/api/v1", apiAuth, active)
	v1.GET("/me", authHandler.Me)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.POST("/projects/:id/invite", projectHandler.Invite)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// --- Observability & docs (api-classified, no session) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?

	return e
}
