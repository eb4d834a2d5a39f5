package governance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/messaging"
	"github.com/quorumpoint/qp-ledger/internal/providers/ethereum"
	"github.com/quorumpoint/qp-ledger/internal/sequence"
	"github.com/quorumpoint/qp-ledger/internal/store"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
	"github.com/quorumpoint/qp-ledger/internal/types"
)

// ProposalService creates and manages governance proposals whose identifiers
// are kept consistent with the Governor contract
//
//go:generate mockgen -source=proposal.go -destination=../mocks/proposal.go -package=mocks -mock_names=ProposalService=MockProposalService
type ProposalService interface {
	// Create reserves the next proposal identifier, submits the proposal
	// on-chain and commits the local row only after the submission succeeds.
	// A failed submission abandons the reservation; the identifier is never
	// reused locally and surfaces on-chain as a gap at worst.
	Create(ctx context.Context, proposerID, description string, deadline time.Time) (*domain.Proposal, error)
	// Get retrieves a proposal by id
	Get(ctx context.Context, id int64) (*domain.Proposal, error)
	// List retrieves proposals, newest first
	List(ctx context.Context, limit, offset int) ([]*domain.Proposal, int64, error)
	// MarkExecuted marks a proposal as executed; idempotent on repeat calls
	MarkExecuted(ctx context.Context, id int64) error
	// MarkCanceled marks a proposal as canceled; idempotent on repeat calls
	MarkCanceled(ctx context.Context, id int64) error
}

type proposalService struct {
	store     store.Store
	governor  ethereum.GovernorClient
	seq       sequence.Synchronizer
	publisher messaging.Publisher
	clock     adapter.Clock

	// createMu serializes reserve -> submit -> confirm so at most one
	// reservation is in flight at a time
	createMu sync.Mutex
}

// NewProposalService creates a new proposal service
func NewProposalService(
	dataStore store.Store,
	governor ethereum.GovernorClient,
	seq sequence.Synchronizer,
	publisher messaging.Publisher,
	clock adapter.Clock,
) ProposalService {
	return &proposalService{
		store:     dataStore,
		governor:  governor,
		seq:       seq,
		publisher: publisher,
		clock:     clock,
	}
}

// Create reserves an identifier, submits on-chain and commits locally
func (s *proposalService) Create(ctx context.Context, proposerID, description string, deadline time.Time) (*domain.Proposal, error) {
	if proposerID == "" {
		return nil, fmt.Errorf("%w: proposer id is required", domain.ErrInvalidIntent)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidIntent)
	}
	now := s.clock.Now().UTC()
	if !deadline.After(now) {
		return nil, fmt.Errorf("%w: deadline must be in the future", domain.ErrInvalidIntent)
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	id := s.seq.ReserveNext()

	txHash, err := s.governor.SubmitProposal(ctx, id, description, deadline)
	if err != nil {
		// The reservation is abandoned: the counter never advanced, and the
		// identifier is retried on the next create once the contract state
		// is re-read
		logger.WarnCtx(ctx, "Proposal submission failed, abandoning reserved identifier",
			zap.Int64("proposal_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", domain.ErrExternalSubmission, err.Error())
	}

	row := &schema.Proposal{
		ID:          id,
		Description: description,
		ProposerID:  proposerID,
		Deadline:    deadline.UTC(),
		TxHash:      txHash,
		CreatedAt:   now,
	}
	if err := s.store.CreateProposal(ctx, row); err != nil {
		// The proposal exists on-chain but not locally; Refresh keeps the
		// counter consistent and the reconciler picks the row up from chain
		// reads in a later pass
		logger.ErrorCtx(ctx, err,
			zap.Int64("proposal_id", id),
			zap.String("tx_hash", txHash))
		return nil, fmt.Errorf("failed to commit proposal: %w", err)
	}

	s.seq.Confirm(id)

	s.publishEvent(ctx, &domain.LedgerEvent{
		Type:       domain.EventProposalCreated,
		UserID:     proposerID,
		ProposalID: &id,
		TxHash:     txHash,
		Timestamp:  s.clock.Now().UTC(),
	})

	return types.ProposalToDomain(row), nil
}

// Get retrieves a proposal by id
func (s *proposalService) Get(ctx context.Context, id int64) (*domain.Proposal, error) {
	row, err := s.store.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrProposalNotFound
	}

	return types.ProposalToDomain(row), nil
}

// List retrieves proposals, newest first
func (s *proposalService) List(ctx context.Context, limit, offset int) ([]*domain.Proposal, int64, error) {
	rows, total, err := s.store.ListProposals(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	proposals := make([]*domain.Proposal, 0, len(rows))
	for _, row := range rows {
		proposals = append(proposals, types.ProposalToDomain(row))
	}

	return proposals, total, nil
}

// MarkExecuted marks a proposal as executed
func (s *proposalService) MarkExecuted(ctx context.Context, id int64) error {
	return s.markTerminal(ctx, id, s.store.MarkProposalExecuted)
}

// MarkCanceled marks a proposal as canceled
func (s *proposalService) MarkCanceled(ctx context.Context, id int64) error {
	return s.markTerminal(ctx, id, s.store.MarkProposalCanceled)
}

func (s *proposalService) markTerminal(ctx context.Context, id int64, mark func(context.Context, int64) (bool, error)) error {
	row, err := s.store.GetProposal(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrProposalNotFound
	}

	changed, err := mark(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("%w: proposal %d already terminal", domain.ErrVotingClosed, id)
	}

	return nil
}

// publishEvent emits a governance event; publish failures are logged, never
// propagated
func (s *proposalService) publishEvent(ctx context.Context, event *domain.LedgerEvent) {
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish governance event",
			zap.Error(err),
			zap.String("type", string(event.Type)))
	}
}
