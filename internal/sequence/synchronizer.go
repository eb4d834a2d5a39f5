package sequence

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/logger"
)

// Authority is the external source of truth for the highest issued proposal
// identifier, typically the Governor contract
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/sequence.go -package=mocks -mock_names=Authority=MockAuthority,Synchronizer=MockSynchronizer
type Authority interface {
	// HighestID returns the highest identifier the authority has issued
	HighestID(ctx context.Context) (int64, error)
}

// Synchronizer reserves monotonically increasing proposal identifiers kept
// consistent with the external authority. Reservations are provisional: the
// counter only advances on Confirm, so an abandoned reservation leaves a gap
// in the on-chain numbering but never a duplicate.
type Synchronizer interface {
	// Initialize seeds the counter from the authority. Failures fall back to
	// zero and leave the synchronizer in a degraded but usable state.
	Initialize(ctx context.Context) error
	// ReserveNext returns the next identifier without advancing the counter.
	// Callers must serialize reserve, external submit, confirm-or-abandon per
	// in-flight attempt.
	ReserveNext() int64
	// Confirm advances the counter to id if id is greater; idempotent
	Confirm(id int64)
	// Refresh re-queries the authority and moves the counter forward if the
	// authority is ahead; never moves it backward
	Refresh(ctx context.Context) error
	// HighestConfirmed returns the current counter value
	HighestConfirmed() int64
}

type synchronizer struct {
	authority Authority

	mu                 sync.Mutex
	highestConfirmedID int64
	initialized        bool
}

// NewSynchronizer creates a new sequence synchronizer. The counter is held
// only in memory; the authority is the durable source of truth on restart.
func NewSynchronizer(authority Authority) Synchronizer {
	return &synchronizer{authority: authority}
}

// Initialize seeds the counter from the authority
func (s *synchronizer) Initialize(ctx context.Context) error {
	highest, err := s.authority.HighestID(ctx)
	if err != nil {
		// Degraded mode: identifiers issued from zero may collide with ones
		// already on-chain; Refresh recovers once the authority is reachable.
		logger.WarnCtx(ctx, "Failed to query authority, sequence starting from zero in degraded mode",
			zap.Error(err))
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.highestConfirmedID = highest
	s.initialized = true
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Sequence synchronizer initialized",
		zap.Int64("highest_confirmed_id", highest))

	return nil
}

// ReserveNext returns the next identifier without advancing the counter
func (s *synchronizer) ReserveNext() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highestConfirmedID + 1
}

// Confirm advances the counter to id if id is greater; idempotent
func (s *synchronizer) Confirm(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.highestConfirmedID {
		s.highestConfirmedID = id
	}
}

// Refresh re-queries the authority and only ever moves the counter forward,
// so already-issued local identifiers are never retroactively invalidated
func (s *synchronizer) Refresh(ctx context.Context) error {
	highest, err := s.authority.HighestID(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh sequence from authority", zap.Error(err))
		return nil
	}

	s.mu.Lock()
	if highest > s.highestConfirmedID {
		s.highestConfirmedID = highest
	}
	s.mu.Unlock()

	return nil
}

// HighestConfirmed returns the current counter value
func (s *synchronizer) HighestConfirmed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highestConfirmedID
}
