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

	"aevia-legacy/config"
	apidocs "aevia-legacy/docs/api"
	"aevia-legacy/internal/adapter/chain"
	"aevia-legacy/internal/adapter/custody"
	"aevia-legacy/internal/adapter/events"
	httpHandler "aevia-legacy/internal/adapter/http/handler"
	"aevia-legacy/internal/adapter/stakekit"
	pgStorage "aevia-legacy/internal/adapter/storage/postgres"
	redisStorage "aevia-legacy/internal/adapter/storage/redis"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/internal/service"
	"aevia-legacy/internal/worker"
	"aevia-legacy/migrations"
	"aevia-legacy/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("AEVIA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Aevia legacy service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Custody keys
	operator, err := custody.NewTransactionSignerFromHex(cfg.Custody.OperatorPrivateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load operator key")
	}
	keyOracle, err := custody.NewHDKeyOracle(cfg.Custody.Mnemonic)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load custody seed")
	}
	log.Info().Str("operator", operator.Address()).Msg("Custody keys loaded")

	gasTier, err := domain.ParseGasTier(cfg.StakeKit.GasTier)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gas tier")
	}

	// Initialize repositories
	legacyRepo := pgStorage.NewLegacyRepo(pool)
	walletRepo := pgStorage.NewInvestmentWalletRepo(pool)
	contractRepo := pgStorage.NewContractRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Outbound adapters
	provider := stakekit.NewClient(cfg.StakeKit, log)
	executor := chain.NewExecutor(cfg.Chain, operator, log)
	locker := redisStorage.NewLegacyLock(rdb)

	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPub := events.NewKafkaPublisher(cfg.Kafka, log)
		defer func() {
			if err := kafkaPub.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Kafka writer")
			}
		}()
		publisher = kafkaPub
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka events enabled")
	}

	// Initialize business services
	orchestrator := service.NewStakingOrchestrator(provider, service.OrchestratorConfig{
		GasTier:         gasTier,
		PollInterval:    cfg.StakeKit.PollInterval,
		PollMaxAttempts: cfg.StakeKit.PollMaxAttempts,
	}, log)
	wallets := service.NewInvestmentWalletRegistry(walletRepo, keyOracle, log)
	contractSvc := service.NewContractService(contractRepo, log)
	legacySvc := service.NewLegacyService(service.LegacyDeps{
		Legacies:     legacyRepo,
		Contracts:    contractRepo,
		Wallets:      wallets,
		Orchestrator: orchestrator,
		Chain:        executor,
		Locker:       locker,
		Events:       publisher,
		Transactor:   transactor,
	}, cfg.Legacy, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	httpHandler.SetSwaggerSpec(apidocs.OpenAPI)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LegacySvc:      legacySvc,
		ContractSvc:    contractSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// Background workers
	var sweeperDone <-chan struct{}
	if cfg.Worker.ClaimEnabled {
		sweeper := worker.NewRewardSweeper(legacyRepo, legacySvc, cfg.Worker, log)
		sweeperDone = sweeper.Start(ctx)
	}

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	// Sagas run on detached contexts; give in-flight requests the saga budget.
	shutdownTimeout := 10 * time.Second
	if cfg.Legacy.SagaTimeout > shutdownTimeout {
		shutdownTimeout = cfg.Legacy.SagaTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Claims already inside a saga keep running; wait before closing the pools.
	if sweeperDone != nil {
		select {
		case <-sweeperDone:
		case <-shutdownCtx.Done():
			log.Error().Msg("reward sweeper still running at shutdown deadline")
		}
	}

	log.Info().Msg("Server exited")
}
