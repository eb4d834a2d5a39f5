package governance

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/messaging"
	"github.com/quorumpoint/qp-ledger/internal/providers/ethereum"
	"github.com/quorumpoint/qp-ledger/internal/store"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
	"github.com/quorumpoint/qp-ledger/internal/types"
)

// VotingService records votes and keeps the per-proposal tally aggregate in
// step with the user_votes rows
//
//go:generate mockgen -source=voting.go -destination=../mocks/voting.go -package=mocks -mock_names=VotingService=MockVotingService
type VotingService interface {
	// CastVote records a vote for the voter on the proposal. The voter's power
	// is their token balance at vote time. Duplicate votes return
	// domain.ErrDuplicateVote; the unique index on (proposal, voter) is the
	// final authority even under concurrent submissions.
	CastVote(ctx context.Context, proposalID int64, voterID string, support bool) (*domain.UserVote, error)
	// Tally retrieves the materialized vote tally for a proposal
	Tally(ctx context.Context, proposalID int64) (*domain.VoteTally, error)
	// ListVotes retrieves a proposal's votes, newest first
	ListVotes(ctx context.Context, proposalID int64, limit, offset int) ([]*domain.UserVote, int64, error)
}

type votingService struct {
	store     store.Store
	governor  ethereum.GovernorClient
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewVotingService creates a new voting service
func NewVotingService(
	dataStore store.Store,
	governor ethereum.GovernorClient,
	publisher messaging.Publisher,
	clock adapter.Clock,
) VotingService {
	return &votingService{
		store:     dataStore,
		governor:  governor,
		publisher: publisher,
		clock:     clock,
	}
}

// CastVote records a vote on a proposal
func (s *votingService) CastVote(ctx context.Context, proposalID int64, voterID string, support bool) (*domain.UserVote, error) {
	if voterID == "" {
		return nil, fmt.Errorf("%w: voter id is required", domain.ErrInvalidIntent)
	}

	proposal, err := s.store.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}
	if !types.ProposalToDomain(proposal).Votable(s.clock.Now().UTC()) {
		return nil, domain.ErrVotingClosed
	}

	// Cheap pre-check; the unique index still decides under races
	existing, err := s.store.GetUserVote(ctx, proposalID, voterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateVote
	}

	power, err := s.votingPower(ctx, voterID)
	if err != nil {
		return nil, err
	}

	entry, err := s.createPendingEntry(ctx, proposalID, voterID, support, power)
	if err != nil {
		return nil, err
	}

	txHash, err := s.governor.SubmitVote(ctx, proposalID, support)
	if err != nil {
		s.finalize(ctx, entry.ID, domain.StatusFailed)
		return nil, fmt.Errorf("%w: %s", domain.ErrExternalSubmission, err.Error())
	}

	vote := &schema.UserVote{
		ProposalID:  proposalID,
		VoterID:     voterID,
		Support:     support,
		VotingPower: power.String(),
		TxHash:      &txHash,
		VotedAt:     s.clock.Now().UTC(),
	}

	saved, err := s.store.CastVote(ctx, vote)
	if err != nil {
		s.finalize(ctx, entry.ID, domain.StatusFailed)
		if errors.Is(err, domain.ErrDuplicateVote) {
			return nil, domain.ErrDuplicateVote
		}
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.finalize(ctx, entry.ID, domain.StatusConfirmed)

	s.publishEvent(ctx, &domain.LedgerEvent{
		Type:       domain.EventVoteCast,
		UserID:     voterID,
		EntryID:    entry.ID,
		Kind:       domain.KindVoteCast,
		ProposalID: &proposalID,
		TxHash:     txHash,
		Timestamp:  s.clock.Now().UTC(),
	})

	return types.UserVoteToDomain(saved), nil
}

// Tally retrieves the materialized vote tally for a proposal
func (s *votingService) Tally(ctx context.Context, proposalID int64) (*domain.VoteTally, error) {
	proposal, err := s.store.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrProposalNotFound
	}

	aggregate, err := s.store.GetVoteAggregate(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	return types.VoteAggregateToDomain(proposalID, aggregate), nil
}

// ListVotes retrieves a proposal's votes, newest first
func (s *votingService) ListVotes(ctx context.Context, proposalID int64, limit, offset int) ([]*domain.UserVote, int64, error) {
	rows, total, err := s.store.ListVotes(ctx, proposalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	votes := make([]*domain.UserVote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, types.UserVoteToDomain(row))
	}

	return votes, total, nil
}

// votingPower derives the voter's power from their token balance at vote time
func (s *votingService) votingPower(ctx context.Context, voterID string) (*big.Int, error) {
	balance, err := s.store.GetBalance(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if balance == nil || balance.TokenBalance <= 0 {
		return nil, domain.ErrNoVotingPower
	}

	return big.NewInt(balance.TokenBalance), nil
}

// createPendingEntry records the vote attempt in the ledger before any
// external submission, so every attempt leaves an auditable trace
func (s *votingService) createPendingEntry(ctx context.Context, proposalID int64, voterID string, support bool, power *big.Int) (*schema.LedgerEntry, error) {
	source := string(domain.SourceGovernance)
	powerStr := power.String()
	entry := &schema.LedgerEntry{
		ID:          ulid.Make().String(),
		UserID:      voterID,
		Kind:        string(domain.KindVoteCast),
		Source:      &source,
		Status:      string(domain.StatusPending),
		ProposalID:  &proposalID,
		Support:     &support,
		VotingPower: &powerStr,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if err := s.store.CreateLedgerEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create vote ledger entry: %w", err)
	}

	return entry, nil
}

// finalize transitions the vote ledger entry to a terminal status; a failure
// here leaves a pending entry for the reconciler and is only logged
func (s *votingService) finalize(ctx context.Context, entryID string, status domain.EntryStatus) {
	if err := s.store.FinalizeLedgerEntry(ctx, entryID, status, s.clock.Now().UTC()); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("entry_id", entryID),
			zap.String("status", string(status)))
	}
}

// publishEvent emits a governance event; publish failures are logged, never
// propagated
func (s *votingService) publishEvent(ctx context.Context, event *domain.LedgerEvent) {
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish governance event",
			zap.Error(err),
			zap.String("type", string(event.Type)))
	}
}
