package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/api/middleware"
	"github.com/quorumpoint/qp-ledger/internal/api/server"
	"github.com/quorumpoint/qp-ledger/internal/config"
	"github.com/quorumpoint/qp-ledger/internal/governance"
	"github.com/quorumpoint/qp-ledger/internal/ledger"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/messaging"
	ethprovider "github.com/quorumpoint/qp-ledger/internal/providers/ethereum"
	"github.com/quorumpoint/qp-ledger/internal/providers/jetstream"
	"github.com/quorumpoint/qp-ledger/internal/sequence"
	"github.com/quorumpoint/qp-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting QuorumPoint Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Connect to NATS JetStream; events are dropped when NATS is not configured
	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, ledger events will not be published")
	}
	defer publisher.Close()

	// Connect to the Governor contract
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Governor.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Governor.RPCURL))
	}
	governor, err := ethprovider.NewGovernorClient(ethprovider.Config{
		ContractAddress: cfg.Governor.ContractAddress,
		PrivateKey:      cfg.Governor.PrivateKey,
		GasLimit:        cfg.Governor.GasLimit,
		SubmitAttempts:  cfg.Governor.SubmitAttempts,
		SubmitBackoff:   cfg.Governor.SubmitBackoff,
	}, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Governor client", zap.Error(err))
	}
	defer governor.Close()
	logger.InfoCtx(ctx, "Connected to Governor contract",
		zap.String("contract", cfg.Governor.ContractAddress))

	// Seed the proposal sequence from the contract; degraded startup is
	// tolerated and recovered by the periodic refresh
	seq := sequence.NewSynchronizer(governor)
	if err := seq.Initialize(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to initialize proposal sequence", zap.Error(err))
	}
	go refreshSequence(ctx, seq, cfg.Governor.SequenceRefreshInterval)

	// Create the transition executor
	executor, err := ledger.NewExecutor(ledger.Config{
		SubToMainRatio:   cfg.Ratios.SubToMain,
		MainToTokenRatio: cfg.Ratios.MainToToken,
	}, dataStore, publisher, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger executor", zap.Error(err))
	}

	// Create governance services
	proposals := governance.NewProposalService(dataStore, governor, seq, publisher, clock)
	voting := governance.NewVotingService(dataStore, governor, publisher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, executor, proposals, voting)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// refreshSequence keeps the proposal sequence aligned with the contract
func refreshSequence(ctx context.Context, seq sequence.Synchronizer, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = seq.Refresh(ctx)
		}
	}
}
