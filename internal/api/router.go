package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afterclass/ecommerce-api/internal/api/handler"
	"github.com/afterclass/ecommerce-api/internal/api/middleware"
	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/service"
	"github.com/afterclass/ecommerce-api/internal/infrastructure/config"
	mongostore "github.com/afterclass/ecommerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/afterclass/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/afterclass/ecommerce-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)
	userCache := redisstore.NewUserCache(rdb)

	hasher := service.NewPasswordHasher()
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, issuer, log)
	userService := service.NewUserService(userRepo, hasher, userCache, log)
	orderService := service.NewOrderService(orderRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, issuer.TTL())
	userHandler := handler.NewUserHandler(userService)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(issuer)

	// --- API routes ---
	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/login", authHandler.LoginPage)
	auth.POST("/register", authHandler.Register)
	auth.GET("/current", authHandler.Current, authRequired)
	auth.GET("/logout", authHandler.Logout)

	users := apiGroup.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	orders := apiGroup.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/all", orderHandler.ListAll, middleware.RequireRole(domain.RoleAdmin))

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	return e
}
