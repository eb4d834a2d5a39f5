package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quorumpoint/qp-ledger/internal/domain"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	err = initializeTestDatabase(testDB)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initializeTestDatabase runs the schema initialization SQL
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = sqlDB.Exec(string(schemaSQL))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// initPGTestDB initializes a test database for each test
// This function creates a new store instance and ensures clean state
func initPGTestDB(t *testing.T) Store {
	// Start a transaction for test isolation
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	// Store the transaction in test context for cleanup
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// cleanupPGTestDB is called after each test to clean up
// With transaction-based isolation, this is handled by the t.Cleanup rollback
func cleanupPGTestDB(t *testing.T) {
	// Cleanup is handled by transaction rollback in t.Cleanup
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}

// The concurrency tests below run against the pooled connection rather than
// the per-test transaction, because racing goroutines need separate
// connections to contend on row locks.

// TestPostgreSQLStore_ConcurrentConditionalSpends races several conditional
// decrements against one balance that covers only a single spend; exactly
// one may win.
func TestPostgreSQLStore_ConcurrentConditionalSpends(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	dataStore := NewPGStore(testDB)
	ctx := context.Background()

	t.Run("sub to main conversion", func(t *testing.T) {
		userID := "user-race-convert"
		t.Cleanup(func() {
			testDB.Exec("DELETE FROM point_balances WHERE user_id = ?", userID)
		})

		require.NoError(t, dataStore.EnsureBalance(ctx, userID))
		require.NoError(t, dataStore.AddSubPoints(ctx, userID, 90))

		const attempts = 8
		var applied int64
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := dataStore.ConvertSubToMain(ctx, userID, 90, 9)
				assert.NoError(t, err)
				if ok {
					atomic.AddInt64(&applied, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), atomic.LoadInt64(&applied))

		balance, err := dataStore.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.SubPoint)
		assert.Equal(t, int64(9), balance.MainPoint)
	})

	t.Run("main to token exchange", func(t *testing.T) {
		userID := "user-race-exchange"
		t.Cleanup(func() {
			testDB.Exec("DELETE FROM point_balances WHERE user_id = ?", userID)
		})

		require.NoError(t, dataStore.EnsureBalance(ctx, userID))
		require.NoError(t, dataStore.AddMainPoints(ctx, userID, 40))

		const attempts = 8
		var applied int64
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := dataStore.ExchangeMainForTokens(ctx, userID, 40, 2)
				assert.NoError(t, err)
				if ok {
					atomic.AddInt64(&applied, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), atomic.LoadInt64(&applied))

		balance, err := dataStore.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.MainPoint)
		assert.Equal(t, int64(2), balance.TokenBalance)
	})
}

// TestPostgreSQLStore_ConcurrentDuplicateVotes races identical votes from one
// voter; exactly one row lands, the rest surface as duplicates, and the tally
// counts the voter once.
func TestPostgreSQLStore_ConcurrentDuplicateVotes(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	dataStore := NewPGStore(testDB)
	ctx := context.Background()
	const proposalID = int64(990001)

	t.Cleanup(func() {
		testDB.Exec("DELETE FROM user_votes WHERE proposal_id = ?", proposalID)
		testDB.Exec("DELETE FROM vote_aggregates WHERE proposal_id = ?", proposalID)
		testDB.Exec("DELETE FROM proposals WHERE id = ?", proposalID)
	})

	require.NoError(t, dataStore.CreateProposal(ctx, buildTestProposal(proposalID)))

	const attempts = 8
	var successes, duplicates int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dataStore.CastVote(ctx, buildTestVote(proposalID, "voter-race", true, "100"))
			switch {
			case err == nil:
				atomic.AddInt64(&successes, 1)
			case errors.Is(err, domain.ErrDuplicateVote):
				atomic.AddInt64(&duplicates, 1)
			default:
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&successes))
	assert.Equal(t, int64(attempts-1), atomic.LoadInt64(&duplicates))

	votes, total, err := dataStore.ListVotes(ctx, proposalID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, votes, 1)

	aggregate, err := dataStore.GetVoteAggregate(ctx, proposalID)
	require.NoError(t, err)
	require.NotNil(t, aggregate)
	assert.Equal(t, "100", aggregate.ForVotes)
	assert.Equal(t, int64(1), aggregate.TotalVoters)
	assert.Equal(t, int64(1), aggregate.ForVoters)
	assert.Equal(t, int64(0), aggregate.AgainstVoters)
}
