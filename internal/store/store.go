package store

import (
	"context"
	"time"

	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
)

// BalanceTotals holds per-category sums over a user's confirmed ledger entries
type BalanceTotals struct {
	MainEarned     int64
	MainReceived   int64
	MainExchanged  int64
	SubEarned      int64
	SubConverted   int64
	TokensReceived int64
}

// MainPoint returns the main point balance implied by the totals
func (t BalanceTotals) MainPoint() int64 {
	return t.MainEarned + t.MainReceived - t.MainExchanged
}

// SubPoint returns the sub point balance implied by the totals
func (t BalanceTotals) SubPoint() int64 {
	return t.SubEarned - t.SubConverted
}

// VoteTotals holds sums over a proposal's user_votes rows
type VoteTotals struct {
	ForVotes      string
	AgainstVotes  string
	ForVoters     int64
	AgainstVoters int64
}

// LedgerEntryFilter narrows ListLedgerEntries results
type LedgerEntryFilter struct {
	Status *domain.EntryStatus
	Kind   *domain.EntryKind
	Limit  int
	Offset int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateLedgerEntry inserts a new pending ledger entry; the row is durable
	// before any aggregate mutation is attempted
	CreateLedgerEntry(ctx context.Context, entry *schema.LedgerEntry) error
	// FinalizeLedgerEntry transitions a pending entry to a terminal status
	FinalizeLedgerEntry(ctx context.Context, entryID string, status domain.EntryStatus, confirmedAt time.Time) error
	// GetLedgerEntry retrieves a ledger entry by id
	GetLedgerEntry(ctx context.Context, entryID string) (*schema.LedgerEntry, error)
	// ListLedgerEntries retrieves a user's ledger entries, newest first
	ListLedgerEntries(ctx context.Context, userID string, filter LedgerEntryFilter) ([]*schema.LedgerEntry, int64, error)
	// ListLedgerUserIDs retrieves the distinct user ids present in the ledger
	ListLedgerUserIDs(ctx context.Context) ([]string, error)

	// EnsureBalance creates a zero balance row for the user if absent; safe
	// under concurrent duplicate creates
	EnsureBalance(ctx context.Context, userID string) error
	// GetBalance retrieves a user's balance aggregate, nil if absent
	GetBalance(ctx context.Context, userID string) (*schema.PointBalance, error)
	// AddMainPoints unconditionally increments a user's main point balance
	AddMainPoints(ctx context.Context, userID string, amount int64) error
	// AddSubPoints unconditionally increments a user's sub point balance
	AddSubPoints(ctx context.Context, userID string, amount int64) error
	// ConvertSubToMain atomically decrements sub points and credits main
	// points iff the current sub balance covers subAmount; reports whether
	// the row was affected
	ConvertSubToMain(ctx context.Context, userID string, subAmount, mainReceived int64) (bool, error)
	// ExchangeMainForTokens atomically decrements main points and credits
	// tokens iff the current main balance covers mainAmount
	ExchangeMainForTokens(ctx context.Context, userID string, mainAmount, tokensReceived int64) (bool, error)
	// OverwriteBalance replaces a user's balance aggregate in a single
	// statement; used by the reconciler only
	OverwriteBalance(ctx context.Context, balance *schema.PointBalance) error
	// SumConfirmedEntries computes per-category sums over the user's
	// confirmed ledger entries
	SumConfirmedEntries(ctx context.Context, userID string) (*BalanceTotals, error)

	// CreateProposal commits a proposal row under its externally confirmed id
	CreateProposal(ctx context.Context, proposal *schema.Proposal) error
	// GetProposal retrieves a proposal by id, nil if absent
	GetProposal(ctx context.Context, id int64) (*schema.Proposal, error)
	// ListProposals retrieves proposals, newest first
	ListProposals(ctx context.Context, limit, offset int) ([]*schema.Proposal, int64, error)
	// ListProposalIDs retrieves all proposal ids
	ListProposalIDs(ctx context.Context) ([]int64, error)
	// MarkProposalExecuted sets the executed flag; reports false if the
	// proposal was already terminal
	MarkProposalExecuted(ctx context.Context, id int64) (bool, error)
	// MarkProposalCanceled sets the canceled flag; reports false if the
	// proposal was already terminal
	MarkProposalCanceled(ctx context.Context, id int64) (bool, error)

	// CastVote inserts the vote and applies the tally increments in one
	// transaction. Returns domain.ErrDuplicateVote if the (proposal, voter)
	// pair already voted and domain.ErrAggregateUpdateFailed if the tally
	// update unexpectedly affected zero rows.
	CastVote(ctx context.Context, vote *schema.UserVote) (*schema.UserVote, error)
	// GetUserVote retrieves a vote by (proposal, voter), nil if absent
	GetUserVote(ctx context.Context, proposalID int64, voterID string) (*schema.UserVote, error)
	// ListVotes retrieves a proposal's votes, newest first
	ListVotes(ctx context.Context, proposalID int64, limit, offset int) ([]*schema.UserVote, int64, error)
	// GetVoteAggregate retrieves a proposal's tally, nil if absent
	GetVoteAggregate(ctx context.Context, proposalID int64) (*schema.VoteAggregate, error)
	// OverwriteVoteAggregate replaces a proposal's tally in a single
	// statement; used by the reconciler only
	OverwriteVoteAggregate(ctx context.Context, aggregate *schema.VoteAggregate) error
	// SumVotes computes tally sums over the proposal's user_votes rows
	SumVotes(ctx context.Context, proposalID int64) (*VoteTotals, error)
}
