package handler

import (
	"saldo-ledger/internal/adapter/http/middleware"
	redisStore "saldo-ledger/internal/adapter/storage/redis"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/metrics"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TransactionSvc ports.TransactionService
	LedgerSvc      ports.LedgerService
	PayoutNotifier ports.PayoutNotifier           // nil = admin transitions are not announced
	PayoutLog      ports.PayoutDeliveryRepository // nil = delivery history route disabled
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Recorder
	Logger         zerolog.Logger

	// Client address resolution; an empty TrustedProxies ignores forwarding headers.
	TrustedProxies  []string
	RemoteIPHeaders []string
	TrustedPlatform string
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	if err := middleware.TrustProxies(r, deps.TrustedProxies, deps.RemoteIPHeaders, deps.TrustedPlatform); err != nil {
		deps.Logger.Error().Err(err).Msg("Invalid trusted proxy list, forwarding headers will be ignored")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(requestid.New())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger, deps.Metrics))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
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

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	txnHandler := NewTransactionHandler(deps.TransactionSvc, deps.LedgerSvc)
	v1.POST("/transfers", rl("transfers"), txnHandler.Transfer)
	v1.POST("/withdrawals", rl("withdrawals"), txnHandler.Withdraw)
	v1.GET("/balance", rl("balance"), txnHandler.GetBalance)
	v1.GET("/transfers/:id", rl("balance"), txnHandler.GetTransfer)

	adminHandler := NewAdminHandler(deps.LedgerSvc, deps.PayoutNotifier, deps.PayoutLog)
	admin := v1.Group("/admin", middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/withdrawals/:id", rl("admin"), adminHandler.GetWithdrawal)
		admin.POST("/withdrawals/:id/status", rl("admin"), adminHandler.TransitionWithdrawal)
		if deps.PayoutLog != nil {
			admin.GET("/withdrawals/:id/deliveries", rl("admin"), adminHandler.ListDeliveries)
		}
	}

	return r
}
