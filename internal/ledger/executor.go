package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/messaging"
	"github.com/quorumpoint/qp-ledger/internal/store"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
	"github.com/quorumpoint/qp-ledger/internal/types"
)

const (
	// MinRatio and MaxRatio bound the process-wide conversion ratios
	MinRatio = 1
	MaxRatio = 100
)

// Config holds the initial conversion ratios for the executor
type Config struct {
	// SubToMainRatio is how many sub points buy one main point
	SubToMainRatio int
	// MainToTokenRatio is how many main points buy one token
	MainToTokenRatio int
}

// Executor turns point intents into durable ledger entries and projects each
// confirmed entry onto the balance aggregate exactly once
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// Execute validates the intent, records a pending ledger entry, applies
	// the aggregate mutation and returns the entry in its terminal state.
	// Callers must inspect the returned entry's status: an insufficient
	// balance surfaces as a failed entry, not an error.
	Execute(ctx context.Context, intent domain.PointIntent) (*domain.LedgerEntry, error)
	// SetRatios updates the process-wide conversion ratios, bounded to [1,100]
	SetRatios(subToMain, mainToToken int) error
	// Ratios returns the conversion ratios currently in effect
	Ratios() (subToMain, mainToToken int)
}

type executor struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock

	mu               sync.RWMutex
	subToMainRatio   int
	mainToTokenRatio int
}

// NewExecutor creates a new transition executor
func NewExecutor(cfg Config, dataStore store.Store, publisher messaging.Publisher, clock adapter.Clock) (Executor, error) {
	if err := validateRatio(cfg.SubToMainRatio); err != nil {
		return nil, fmt.Errorf("sub_to_main_ratio: %w", err)
	}
	if err := validateRatio(cfg.MainToTokenRatio); err != nil {
		return nil, fmt.Errorf("main_to_token_ratio: %w", err)
	}

	return &executor{
		store:            dataStore,
		publisher:        publisher,
		clock:            clock,
		subToMainRatio:   cfg.SubToMainRatio,
		mainToTokenRatio: cfg.MainToTokenRatio,
	}, nil
}

func validateRatio(ratio int) error {
	if ratio < MinRatio || ratio > MaxRatio {
		return fmt.Errorf("%w: %d not in [%d,%d]", domain.ErrRatioOutOfRange, ratio, MinRatio, MaxRatio)
	}
	return nil
}

// SetRatios updates the process-wide conversion ratios
func (e *executor) SetRatios(subToMain, mainToToken int) error {
	if err := validateRatio(subToMain); err != nil {
		return fmt.Errorf("sub_to_main_ratio: %w", err)
	}
	if err := validateRatio(mainToToken); err != nil {
		return fmt.Errorf("main_to_token_ratio: %w", err)
	}

	e.mu.Lock()
	e.subToMainRatio = subToMain
	e.mainToTokenRatio = mainToToken
	e.mu.Unlock()

	return nil
}

// Ratios returns the conversion ratios currently in effect
func (e *executor) Ratios() (int, int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.subToMainRatio, e.mainToTokenRatio
}

// Execute runs the pending -> mutate -> terminal transition for one intent
func (e *executor) Execute(ctx context.Context, intent domain.PointIntent) (*domain.LedgerEntry, error) {
	// 1. Validate before any persistence
	if err := e.validateIntent(intent); err != nil {
		return nil, err
	}

	// 2. Compute derived outputs with the ratios in effect now; requests
	// whose destination truncates to zero are rejected before any entry is
	// created so the ledger carries no noise for no-op requests
	entry, err := e.buildEntry(intent)
	if err != nil {
		return nil, err
	}

	// 3. The balance aggregate is created lazily on first intent
	if err := e.store.EnsureBalance(ctx, intent.UserID); err != nil {
		return nil, err
	}

	// 4. The pending row is durable before the aggregate mutation so a crash
	// here leaves an auditable record rather than silent loss
	if err := e.store.CreateLedgerEntry(ctx, entry); err != nil {
		return nil, err
	}

	// 5. Apply the aggregate mutation for this kind
	applied, mutErr := e.applyMutation(ctx, intent.UserID, entry)

	status := domain.StatusConfirmed
	if mutErr != nil || !applied {
		status = domain.StatusFailed
	}

	// 6. Finalize; the transition is keyed on (id, pending) in the store
	now := e.clock.Now().UTC()
	if err := e.store.FinalizeLedgerEntry(ctx, entry.ID, status, now); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("entry_id", entry.ID),
			zap.String("status", string(status)))
		return nil, err
	}
	entry.Status = string(status)
	entry.ConfirmedAt = &now

	result := types.LedgerEntryToDomain(entry)

	if mutErr != nil {
		return result, mutErr
	}

	if !applied {
		// The conditional decrement found less balance than requested; the
		// failed entry carries the reason, the call itself succeeds
		result.FailureReason = domain.ErrInsufficientBalance.Error()
		return result, nil
	}

	e.publishConfirmed(ctx, entry)

	return result, nil
}

// validateIntent rejects malformed intents before any write
func (e *executor) validateIntent(intent domain.PointIntent) error {
	if intent.UserID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidIntent)
	}
	if intent.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidIntent, intent.Amount)
	}

	switch intent.Kind {
	case domain.KindMainEarn, domain.KindSubEarn:
		if !domain.IsValidPointSource(intent.Source) {
			return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidIntent, intent.Source)
		}
	case domain.KindSubToMainConversion, domain.KindMainToTokenExchange:
		// Source is implied by the kind
	case domain.KindVoteCast:
		// Vote entries are created by the governance service, never directly
		return fmt.Errorf("%w: vote_cast intents go through the voting service", domain.ErrInvalidIntent)
	default:
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidIntent, intent.Kind)
	}

	return nil
}

// buildEntry constructs the pending schema row for the intent, capturing the
// ratio in effect so the entry stays reproducible after ratio changes
func (e *executor) buildEntry(intent domain.PointIntent) (*schema.LedgerEntry, error) {
	entry := &schema.LedgerEntry{
		ID:        ulid.Make().String(),
		UserID:    intent.UserID,
		Kind:      string(intent.Kind),
		Status:    string(domain.StatusPending),
		CreatedAt: e.clock.Now().UTC(),
	}
	if intent.Description != "" {
		entry.Description = &intent.Description
	}

	amount := intent.Amount

	switch intent.Kind {
	case domain.KindMainEarn:
		source := string(intent.Source)
		entry.Source = &source
		entry.MainEarnAmount = &amount

	case domain.KindSubEarn:
		source := string(intent.Source)
		entry.Source = &source
		entry.SubEarnAmount = &amount

	case domain.KindSubToMainConversion:
		ratio, _ := e.Ratios()
		received := amount / int64(ratio)
		if received == 0 {
			return nil, fmt.Errorf("%w: %d sub points at ratio %d", domain.ErrZeroResult, amount, ratio)
		}
		// Only whole multiples of the ratio leave the balance; the
		// truncation remainder stays in sub points
		converted := received * int64(ratio)
		source := string(domain.SourceConversion)
		entry.Source = &source
		entry.SubConvertedAmount = &converted
		entry.MainReceived = &received
		entry.RatioApplied = &ratio

	case domain.KindMainToTokenExchange:
		_, ratio := e.Ratios()
		received := amount / int64(ratio)
		if received == 0 {
			return nil, fmt.Errorf("%w: %d main points at ratio %d", domain.ErrZeroResult, amount, ratio)
		}
		// Same truncation rule as conversion: the remainder stays in main points
		exchanged := received * int64(ratio)
		source := string(domain.SourceExchange)
		entry.Source = &source
		entry.MainExchangedAmount = &exchanged
		entry.TokensReceived = &received
		entry.RatioApplied = &ratio
	}

	return entry, nil
}

// applyMutation performs the aggregate mutation for the entry's kind.
// The returned bool reports whether the conditional statement affected a row.
func (e *executor) applyMutation(ctx context.Context, userID string, entry *schema.LedgerEntry) (bool, error) {
	switch domain.EntryKind(entry.Kind) {
	case domain.KindMainEarn:
		if err := e.store.AddMainPoints(ctx, userID, *entry.MainEarnAmount); err != nil {
			return false, err
		}
		return true, nil

	case domain.KindSubEarn:
		if err := e.store.AddSubPoints(ctx, userID, *entry.SubEarnAmount); err != nil {
			return false, err
		}
		return true, nil

	case domain.KindSubToMainConversion:
		return e.store.ConvertSubToMain(ctx, userID, *entry.SubConvertedAmount, *entry.MainReceived)

	case domain.KindMainToTokenExchange:
		return e.store.ExchangeMainForTokens(ctx, userID, *entry.MainExchangedAmount, *entry.TokensReceived)
	}

	return false, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidIntent, entry.Kind)
}

// publishConfirmed emits the confirmed-entry event; publish failures are
// logged, never propagated into the intent result
func (e *executor) publishConfirmed(ctx context.Context, entry *schema.LedgerEntry) {
	event := &domain.LedgerEvent{
		Type:      domain.EventEntryConfirmed,
		UserID:    entry.UserID,
		EntryID:   entry.ID,
		Kind:      domain.EntryKind(entry.Kind),
		Timestamp: e.clock.Now().UTC(),
	}
	if err := e.publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ledger event",
			zap.Error(err),
			zap.String("entry_id", entry.ID))
	}
}
