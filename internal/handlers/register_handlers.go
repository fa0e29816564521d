package handlers

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/cmd/docs"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rdb is optional; when set, rate limit counters are shared through Redis.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rdb *redis.Client,
) error {
	// Health checks stay outside auth and rate limiting
	r.GET("/health", getHealth)
	r.GET("/api/health", getHealth)

	loginLimiter, err := middleware.NewLimiter(loginRate, "limiter:login", rdb)
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	registerAuthRoutes(r, services.Auth, loginLimiter)

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit, "limiter:api", rdb)
	if err != nil {
		return fmt.Errorf("api limiter: %w", err)
	}
	setupAPIV1Routes(r, cfg, services, middleware.RateLimit(apiLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", rateLimit, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerCategoryRoutes(v1, service.Category)
	registerTransactionRoutes(v1, service.Transaction, service.Reporting)
	registerRecurringRoutes(v1, service.Recurring)
	registerBudgetRoutes(v1, service.Budget)
	registerExportRoutes(v1, service.Export)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
