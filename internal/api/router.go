package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/walletbase/account-api/internal/api/handler"
	"github.com/walletbase/account-api/internal/api/middleware"
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/service"
	"github.com/walletbase/account-api/internal/infrastructure/config"
	mongodb "github.com/walletbase/account-api/internal/infrastructure/db/mongo"
	redisdb "github.com/walletbase/account-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	authService := service.NewAuthService(userRepo, tokens, hasher, limiter)
	userService := service.NewUserService(userRepo, hasher)

	cookies := handler.CookieConfig{
		Secure:     cfg.SecureCookies || cfg.Production(),
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	}
	authHandler := handler.NewAuthHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)

	authGuard := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/token/login", authHandler.TokenLogin)
	auth.POST("/token/admin/login", authHandler.TokenAdminLogin)
	auth.POST("/token/refresh", authHandler.TokenRefresh)

	// --- User routes (auth guard first, role guard per route) ---
	users := e.Group("/users", authGuard)
	users.POST("", userHandler.Create, middleware.RequireRoles(domain.RoleAdmin))
	users.GET("", userHandler.List, middleware.RequireRoles(domain.RoleAdmin))
	users.GET("/profile", userHandler.Profile, middleware.RequireRoles(domain.RoleAdmin, domain.RoleUser))
	users.GET("/:id", userHandler.Get, middleware.RequireRoles(domain.RoleAdmin))
	users.PATCH("/:id", userHandler.Update, middleware.RequireRoles(domain.RoleAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireRoles(domain.RoleAdmin))

	wallets := users.Group("/profile/wallets", middleware.RequirePermission(domain.PermProfileUpdate))
	wallets.POST("", userHandler.AddWallet)
	wallets.PUT("/:index", userHandler.UpdateWallet)
	wallets.DELETE("/:index", userHandler.RemoveWallet)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
