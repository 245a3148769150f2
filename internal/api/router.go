package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/teedesigner/design-api/docs"
	"github.com/teedesigner/design-api/internal/api/handler"
	"github.com/teedesigner/design-api/internal/api/middleware"
	"github.com/teedesigner/design-api/internal/core/domain"
	"github.com/teedesigner/design-api/internal/core/service"
	"github.com/teedesigner/design-api/internal/infrastructure/config"
	mongodb "github.com/teedesigner/design-api/internal/infrastructure/db/mongo"
	redisdb "github.com/teedesigner/design-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all dependencies constructed
// explicitly and all routes registered. Nothing here is a process-wide
// singleton; every component receives its collaborators through its
// constructor.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("teedesigner"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	designRepo := mongodb.NewDesignRepository(db)
	listingCache := redisdb.NewListingCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(userRepo, log)
	designService := service.NewDesignService(designRepo, listingCache, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	designHandler := handler.NewDesignHandler(designService)
	healthHandler := handler.NewHealthHandler(cfg.Env, db, rdb)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- User routes ---
	users := e.Group("/api/users", requireAuth)
	users.GET("/profile", userHandler.GetProfile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.GET("", userHandler.List, adminOnly)
	users.DELETE("/:userId", userHandler.Delete, adminOnly)

	// --- Design routes ---
	// Route order matters: /public, /search, and /user/mine must register
	// before the /:id wildcard.
	designs := e.Group("/api/designs")
	designs.GET("/public", designHandler.ListPublic)
	designs.GET("/search", designHandler.Search)
	designs.GET("/user/mine", designHandler.ListMine, requireAuth)
	designs.GET("/:id", designHandler.Get, optionalAuth)
	designs.POST("", designHandler.Create, requireAuth)
	designs.PUT("/:id", designHandler.Update, requireAuth)
	designs.DELETE("/:id", designHandler.Delete, requireAuth)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Health)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
