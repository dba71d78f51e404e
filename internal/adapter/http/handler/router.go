package handler

import (
	"aevia-legacy/internal/adapter/http/middleware"
	redisStore "aevia-legacy/internal/adapter/storage/redis"
	"aevia-legacy/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LegacySvc      ports.LegacyService
	ContractSvc    ports.ContractService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep, pings every dependency)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	legacyHandler := NewLegacyHandler(deps.LegacySvc)
	legacies := v1.Group("/legacies")
	{
		legacies.POST("", rl("legacy_write"), legacyHandler.Create)
		legacies.GET("/:id", rl("read"), legacyHandler.Get)
		legacies.GET("/users/:telegram_id/last", rl("read"), legacyHandler.GetLastByUser)
		legacies.GET("/:id/signature-message", rl("read"), legacyHandler.SignatureMessage)
		legacies.PUT("/:id/signature", rl("legacy_write"), legacyHandler.SetSignature)
		legacies.GET("/:id/balance", rl("read"), legacyHandler.GetBalance)

		// --- JWT-authenticated routes (operator) ---
		legacies.POST("/:id/execute", jwtAuth, rl("legacy_execute"), legacyHandler.Execute)
		legacies.POST("/:id/stake", jwtAuth, rl("staking"), legacyHandler.Stake)
		legacies.POST("/:id/claim", jwtAuth, rl("staking"), legacyHandler.Claim)
		legacies.POST("/:id/withdraw", jwtAuth, rl("staking"), legacyHandler.Withdraw)
	}

	contractHandler := NewContractHandler(deps.ContractSvc)
	contracts := v1.Group("/contracts")
	{
		contracts.GET("", rl("read"), contractHandler.List)
		contracts.GET("/:name/:chain_id", rl("read"), contractHandler.Get)
		contracts.POST("", jwtAuth, rl("contracts_write"), contractHandler.Create)
	}

	return r
}
