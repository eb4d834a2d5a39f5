package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/config"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/reconcile"
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
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
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
			"service": "reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting QuorumPoint Ledger reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	reconciler := reconcile.NewReconciler(dataStore, adapter.NewClock())

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	// Zero interval runs a single sweep and exits
	for {
		sweep(ctx, cfg, dataStore, reconciler)

		if cfg.Interval <= 0 {
			break
		}

		select {
		case <-ctx.Done():
			logger.Info("Reconciler stopped")
			return
		case <-time.After(cfg.Interval):
		}
	}

	logger.Info("Reconciler finished")
}

// sweep recomputes every balance aggregate and vote tally once
func sweep(ctx context.Context, cfg *config.ReconcilerConfig, dataStore store.Store, reconciler reconcile.Reconciler) {
	start := time.Now()

	userIDs, err := dataStore.ListLedgerUserIDs(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("phase", "list_users"))
		return
	}

	proposalIDs, err := dataStore.ListProposalIDs(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("phase", "list_proposals"))
		return
	}

	pool := pond.NewPool(cfg.Worker.WorkerPoolSize,
		pond.WithQueueSize(cfg.Worker.WorkerQueueSize),
		pond.WithContext(ctx))

	var balancesDrifted, talliesDrifted, failures int64

	for _, userID := range userIDs {
		userID := userID
		pool.Submit(func() {
			drifted, err := reconciler.RecomputeBalance(ctx, userID)
			if err != nil {
				atomic.AddInt64(&failures, 1)
				logger.ErrorCtx(ctx, err, zap.String("user_id", userID))
				return
			}
			if drifted {
				atomic.AddInt64(&balancesDrifted, 1)
			}
		})
	}

	for _, proposalID := range proposalIDs {
		proposalID := proposalID
		pool.Submit(func() {
			drifted, err := reconciler.RecomputeProposal(ctx, proposalID)
			if err != nil {
				atomic.AddInt64(&failures, 1)
				logger.ErrorCtx(ctx, err, zap.Int64("proposal_id", proposalID))
				return
			}
			if drifted {
				atomic.AddInt64(&talliesDrifted, 1)
			}
		})
	}

	pool.StopAndWait()

	logger.InfoCtx(ctx, "Reconciliation sweep completed",
		zap.Int("users", len(userIDs)),
		zap.Int("proposals", len(proposalIDs)),
		zap.Int64("balances_drifted", atomic.LoadInt64(&balancesDrifted)),
		zap.Int64("tallies_drifted", atomic.LoadInt64(&talliesDrifted)),
		zap.Int64("failures", atomic.LoadInt64(&failures)),
		zap.Duration("duration", time.Since(start)))
}
