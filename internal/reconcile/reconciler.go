package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/store"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
	"github.com/quorumpoint/qp-ledger/internal/types"
)

// Reconciler recomputes materialized aggregates from their source-of-truth
// rows and overwrites any drift. Recomputation is idempotent; running it
// against an already-consistent aggregate is a no-op apart from the write.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// RecomputeBalance rebuilds a user's balance aggregate from their
	// confirmed ledger entries and reports whether the stored aggregate drifted
	RecomputeBalance(ctx context.Context, userID string) (bool, error)
	// RecomputeProposal rebuilds a proposal's vote tally from its user_votes
	// rows and reports whether the stored tally drifted
	RecomputeProposal(ctx context.Context, proposalID int64) (bool, error)
}

type reconciler struct {
	store store.Store
	clock adapter.Clock
}

// NewReconciler creates a new aggregate reconciler
func NewReconciler(dataStore store.Store, clock adapter.Clock) Reconciler {
	return &reconciler{
		store: dataStore,
		clock: clock,
	}
}

// RecomputeBalance rebuilds a user's balance aggregate from the ledger
func (r *reconciler) RecomputeBalance(ctx context.Context, userID string) (bool, error) {
	totals, err := r.store.SumConfirmedEntries(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to sum ledger entries: %w", err)
	}

	current, err := r.store.GetBalance(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get balance: %w", err)
	}

	expected := &schema.PointBalance{
		UserID:       userID,
		MainPoint:    totals.MainPoint(),
		SubPoint:     totals.SubPoint(),
		TokenBalance: totals.TokensReceived,
		UpdatedAt:    r.clock.Now().UTC(),
	}

	drifted := current == nil ||
		current.MainPoint != expected.MainPoint ||
		current.SubPoint != expected.SubPoint ||
		current.TokenBalance != expected.TokenBalance

	if !drifted {
		return false, nil
	}

	logger.WarnCtx(ctx, "Balance aggregate drifted, overwriting from ledger",
		zap.String("user_id", userID),
		zap.Int64("expected_main", expected.MainPoint),
		zap.Int64("expected_sub", expected.SubPoint),
		zap.Int64("expected_tokens", expected.TokenBalance))

	if err := r.store.OverwriteBalance(ctx, expected); err != nil {
		return false, fmt.Errorf("failed to overwrite balance: %w", err)
	}

	return true, nil
}

// RecomputeProposal rebuilds a proposal's vote tally from its votes
func (r *reconciler) RecomputeProposal(ctx context.Context, proposalID int64) (bool, error) {
	totals, err := r.store.SumVotes(ctx, proposalID)
	if err != nil {
		return false, fmt.Errorf("failed to sum votes: %w", err)
	}

	current, err := r.store.GetVoteAggregate(ctx, proposalID)
	if err != nil {
		return false, fmt.Errorf("failed to get vote aggregate: %w", err)
	}

	forVotes := types.ParseBigInt(totals.ForVotes)
	againstVotes := types.ParseBigInt(totals.AgainstVotes)

	expected := &schema.VoteAggregate{
		ProposalID:    proposalID,
		ForVotes:      forVotes.String(),
		AgainstVotes:  againstVotes.String(),
		TotalVoters:   totals.ForVoters + totals.AgainstVoters,
		ForVoters:     totals.ForVoters,
		AgainstVoters: totals.AgainstVoters,
		UpdatedAt:     r.clock.Now().UTC(),
	}

	drifted := current == nil ||
		types.ParseBigInt(current.ForVotes).Cmp(forVotes) != 0 ||
		types.ParseBigInt(current.AgainstVotes).Cmp(againstVotes) != 0 ||
		current.TotalVoters != expected.TotalVoters ||
		current.ForVoters != expected.ForVoters ||
		current.AgainstVoters != expected.AgainstVoters

	if !drifted {
		return false, nil
	}

	logger.WarnCtx(ctx, "Vote aggregate drifted, overwriting from votes",
		zap.Int64("proposal_id", proposalID),
		zap.String("expected_for", expected.ForVotes),
		zap.String("expected_against", expected.AgainstVotes),
		zap.Int64("expected_total_voters", expected.TotalVoters))

	if err := r.store.OverwriteVoteAggregate(ctx, expected); err != nil {
		return false, fmt.Errorf("failed to overwrite vote aggregate: %w", err)
	}

	return true, nil
}
