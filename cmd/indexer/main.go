package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pns-graph/contract"
	"pns-graph/infrastructure/source"
	"pns-graph/infrastructure/storage"
	"pns-graph/internal"
	"pns-graph/observability"
	"pns-graph/runtime"
	"pns-graph/runtime/workers"
	"pns-graph/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Indexer terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal arrives or the indexer gives up.
// Returning instead of exiting lets the deferred closes of Badger and Bluge run.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	runID := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage (Badger documents, Bluge name index)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	metrics := observability.NewMetrics()
	domainRepository, err := storage.NewDomainRepository(db, logger, config.DomainCacheSize)
	if err != nil {
		return exitConfig, err
	}
	registrationRepository := storage.NewRegistrationRepository(db)
	resolverRepository := storage.NewResolverRepository(db)
	accountRepository := storage.NewAccountRepository(db)
	auditRepository := storage.NewAuditRepository(db)
	checkpointRepository := storage.NewCheckpointRepository(db)
	nameIndex := storage.NewNameIndex(blugeWriter, logger)

	// 3. Services
	auditService := services.NewAuditService(auditRepository, accountRepository, logger)
	domainService := services.NewDomainService(
		domainRepository, resolverRepository, accountRepository, nameIndex,
		auditService, metrics, logger, config.PruneOnAllPaths,
	)
	registrationService := services.NewRegistrationService(
		registrationRepository, accountRepository, domainService, auditService, metrics, logger,
	)
	if err = domainService.EnsureRoot(ctx); err != nil {
		return exitRuntime, fmt.Errorf("seeding root domain: %w", err)
	}

	// 4. Debug inspector, metrics and health
	statsProvider := func() map[string]any {
		return map[string]any{
			"Run":    runID,
			"Source": config.SourceName,
			"Time":   time.Now().Format(time.RFC822),
		}
	}
	debugServer := internal.StartDebugServer(logger, config.DebugPort,
		internal.NewDebugMux(db, nameIndex, metrics.Handler(), nil, statsProvider))
	defer func() {
		_ = debugServer.Close()
	}()

	address := fmt.Sprintf("%s:%d", config.Host, config.GrpcPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(sdkgrpc.UnaryLoggingInterceptor(logger)))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errChan := make(chan error, 2)
	go func() {
		logger.Info("Starting gRPC health server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 5. Supervised workers
	dispatcher := runtime.NewDispatcher(
		config.SourceName, runID, domainService, registrationService, auditService,
		checkpointRepository, metrics, logger,
	)
	openSource := func() (contract.EventSource, error) {
		return source.OpenJSONL(config.SourceName, config.EventsFilepath, logger)
	}
	sup := workers.NewSupervisor(logger, config.RestartInterval, config.MaxRestarts)
	sup.Add(
		workers.NewIndexerWorker(logger, openSource, dispatcher, runID),
		workers.NewHealthMonitoringWorker(logger, metrics, config.MetricInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		if err := sup.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stop()
		<-supervisorDone
		s.GracefulStop()
		return exitRuntime, err
	}

	// 7. Final Cleanup (Graceful Shutdown)
	// Workers must be done before the deferred closes of Badger and Bluge run.
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	<-supervisorDone
	s.GracefulStop()
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.INFO)
}
