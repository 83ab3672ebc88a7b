// Command routingd serves routing-number validation over HTTP and gRPC.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/internal/domain/port"
	"github.com/bibbank/routing-service/internal/domain/service"
	"github.com/bibbank/routing-service/internal/infrastructure/config"
	"github.com/bibbank/routing-service/internal/infrastructure/messaging"
	pgRepo "github.com/bibbank/routing-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/bibbank/routing-service/internal/presentation/grpc"
	"github.com/bibbank/routing-service/internal/presentation/rest"
	"github.com/bibbank/routing-service/pkg/auth"
	pkgkafka "github.com/bibbank/routing-service/pkg/kafka"
	"github.com/bibbank/routing-service/pkg/observability"
	pkgpostgres "github.com/bibbank/routing-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("routing-service failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting routing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"audit_enabled", cfg.AuditEnabled,
	)

	// Tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName:    cfg.ServiceName,
		IncludeRuntime: true,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush

	// Audit log and event publishing.
	var (
		repo      port.ValidationRepository
		publisher port.EventPublisher
		pool      *pgxpool.Pool
	)
	if cfg.AuditEnabled {
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err = pkgpostgres.NewPool(dbCtx, cfg.Database)
		dbCancel()
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		logger.Info("connected to database")

		if err := pkgpostgres.RunMigrations(cfg.Database.DSN(), cfg.MigrationsPath); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		producer, err := pkgkafka.NewProducer(cfg.Kafka.Config)
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warn("failed to close kafka producer", "error", err)
			}
		}()

		repo = pgRepo.NewValidationRepository(pool)
		publisher = messaging.NewPublisher(producer)
	}

	audit, err := usecase.NewAuditTrail(repo, publisher, cfg.Kafka.Topic, meterProvider.Meter(cfg.ServiceName), logger)
	if err != nil {
		return fmt.Errorf("create audit trail: %w", err)
	}

	// Use cases.
	validator := service.NewRoutingNumberValidator()
	validateUC := usecase.NewValidateRoutingNumberUseCase(validator, audit)
	batchUC := usecase.NewValidateBatchUseCase(validator, audit, cfg.BatchMaxSize)
	listUC := usecase.NewListValidationsUseCase(repo)
	statsUC := usecase.NewGetValidationStatsUseCase(repo)

	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		PublicKeyPEM: cfg.JWT.PublicKeyPEM,
		Issuer:       cfg.JWT.Issuer,
	})
	if err != nil {
		return fmt.Errorf("init jwt service: %w", err)
	}

	// gRPC server.
	grpcHandler := grpcPresentation.NewRoutingHandler(validateUC, batchUC, listUC, statsUC, true, logger)
	grpcServer, err := grpcPresentation.NewServer(grpcHandler, grpcPresentation.ServerConfig{
		JWT:         jwtSvc,
		TLSCertFile: cfg.GRPCTLSCert,
		TLSKeyFile:  cfg.GRPCTLSKey,
		Reflection:  cfg.GRPCReflection,
	}, logger)
	if err != nil {
		return fmt.Errorf("create grpc server: %w", err)
	}

	// HTTP server (API, health checks, metrics).
	var db pkgpostgres.Pinger
	if pool != nil {
		db = pool
	}
	router := rest.NewRouter(rest.RouterConfig{
		Health:     rest.NewHealthHandler(cfg.ServiceName, db, logger),
		Validation: rest.NewValidationHandler(validateUC, batchUC, listUC, statsUC, true, logger),
		Metrics:    metricsHandler,
		JWT:        jwtSvc,
		Logger:     logger,
	})
	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(":" + strconv.Itoa(cfg.GRPCPort)); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("routing-service stopped")
	return serveErr
}
