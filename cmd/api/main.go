package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/adapter/geo"
	httpHandler "saldo-ledger/internal/adapter/http/handler"
	pgStorage "saldo-ledger/internal/adapter/storage/postgres"
	redisStorage "saldo-ledger/internal/adapter/storage/redis"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/internal/service"
	"saldo-ledger/pkg/logger"
	"saldo-ledger/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SLD_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var logFile *logger.FileOptions
	if cfg.Log.File != "" {
		logFile = &logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		}
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, logFile)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Saldo Ledger")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	userRepo := pgStorage.NewUserRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	activityRepo := pgStorage.NewActivityRepo(pool)
	securityLogRepo := pgStorage.NewSecurityLogRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	geoCache := redisStorage.NewGeoCache(rdb)
	submissionGuard := redisStorage.NewSubmissionGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	recorder := metrics.New()

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	fingerprintSvc := service.NewFingerprintService(cfg.Fingerprint.Secret)

	geoProvider := geo.NewIPAPIClient(cfg.Geo, &http.Client{Timeout: cfg.Geo.Timeout})
	geoSvc := service.NewGeolocationService(geoProvider, geoCache, cfg.Geo.LocalCacheSize, cfg.Geo.CacheTTL, recorder, log)
	defer geoSvc.Stop()

	riskSvc := service.NewRiskService(activityRepo, securityLogRepo, geoSvc, fingerprintSvc, cfg.Risk, log)
	auditSvc := service.NewSecurityAuditService(securityLogRepo, log)

	ledgerSvc := service.NewLedgerService(
		balanceRepo,
		transferRepo,
		withdrawalRepo,
		submissionGuard,
		encSvc,
		transactor,
		pgStorage.IsRetryable,
		cfg.Ledger,
		log,
	)
	payoutDeliveryRepo := pgStorage.NewPayoutDeliveryRepo(pool)
	payoutSvc := service.NewPayoutNotifier(cfg.Payout, encSvc, sigSvc, &http.Client{Timeout: cfg.Payout.Timeout}, payoutDeliveryRepo, log)
	txnSvc := service.NewTransactionService(userRepo, riskSvc, ledgerSvc, auditSvc, fingerprintSvc, payoutSvc, recorder, log)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TransactionSvc: txnSvc,
		LedgerSvc:      ledgerSvc,
		PayoutNotifier: payoutSvc,
		PayoutLog:      payoutDeliveryRepo,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:        recorder,
		Logger:         log,

		TrustedProxies:  cfg.Server.TrustedProxies,
		RemoteIPHeaders: cfg.Server.RemoteIPHeaders,
		TrustedPlatform: cfg.Server.TrustedPlatform,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Risk delays can hold a request for several seconds.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	payoutSvc.Stop()
	delivered := make(chan struct{})
	go func() {
		payoutSvc.Wait()
		close(delivered)
	}()
	select {
	case <-delivered:
	case <-shutdownCtx.Done():
		log.Warn().Msg("Payout deliveries still pending at shutdown")
	}

	log.Info().Msg("Server exited")
}
