package types

import (
	"math/big"

	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
)

// LedgerEntryToDomain converts a schema ledger entry to its domain form
func LedgerEntryToDomain(entry *schema.LedgerEntry) *domain.LedgerEntry {
	if entry == nil {
		return nil
	}

	out := &domain.LedgerEntry{
		ID:                  entry.ID,
		UserID:              entry.UserID,
		Kind:                domain.EntryKind(entry.Kind),
		Status:              domain.EntryStatus(entry.Status),
		MainEarnAmount:      entry.MainEarnAmount,
		SubEarnAmount:       entry.SubEarnAmount,
		SubConvertedAmount:  entry.SubConvertedAmount,
		MainExchangedAmount: entry.MainExchangedAmount,
		MainReceived:        entry.MainReceived,
		TokensReceived:      entry.TokensReceived,
		RatioApplied:        entry.RatioApplied,
		ProposalID:          entry.ProposalID,
		Support:             entry.Support,
		CreatedAt:           entry.CreatedAt,
		ConfirmedAt:         entry.ConfirmedAt,
	}
	if entry.Source != nil {
		out.Source = domain.PointSource(*entry.Source)
	}
	if entry.Description != nil {
		out.Description = *entry.Description
	}
	if entry.VotingPower != nil {
		out.VotingPower = ParseBigInt(*entry.VotingPower)
	}

	return out
}

// PointBalanceToDomain converts a schema balance to its domain form.
// A nil input maps to a zero balance for the given user, matching the lazy
// creation semantics of the aggregate store.
func PointBalanceToDomain(userID string, balance *schema.PointBalance) *domain.PointBalance {
	if balance == nil {
		return &domain.PointBalance{UserID: userID}
	}
	return &domain.PointBalance{
		UserID:       balance.UserID,
		MainPoint:    balance.MainPoint,
		SubPoint:     balance.SubPoint,
		TokenBalance: balance.TokenBalance,
		UpdatedAt:    balance.UpdatedAt,
	}
}

// ProposalToDomain converts a schema proposal to its domain form
func ProposalToDomain(proposal *schema.Proposal) *domain.Proposal {
	if proposal == nil {
		return nil
	}
	return &domain.Proposal{
		ID:          proposal.ID,
		Description: proposal.Description,
		ProposerID:  proposal.ProposerID,
		Deadline:    proposal.Deadline,
		Executed:    proposal.Executed,
		Canceled:    proposal.Canceled,
		TxHash:      proposal.TxHash,
		CreatedAt:   proposal.CreatedAt,
	}
}

// UserVoteToDomain converts a schema user vote to its domain form
func UserVoteToDomain(vote *schema.UserVote) *domain.UserVote {
	if vote == nil {
		return nil
	}
	out := &domain.UserVote{
		ID:          vote.ID,
		ProposalID:  vote.ProposalID,
		VoterID:     vote.VoterID,
		Support:     vote.Support,
		VotingPower: ParseBigInt(vote.VotingPower),
		VotedAt:     vote.VotedAt,
	}
	if vote.TxHash != nil {
		out.TxHash = *vote.TxHash
	}
	return out
}

// VoteAggregateToDomain converts a schema vote aggregate to its domain form.
// A nil input maps to a zero tally for the given proposal.
func VoteAggregateToDomain(proposalID int64, aggregate *schema.VoteAggregate) *domain.VoteTally {
	if aggregate == nil {
		return &domain.VoteTally{
			ProposalID:   proposalID,
			ForVotes:     big.NewInt(0),
			AgainstVotes: big.NewInt(0),
		}
	}
	return &domain.VoteTally{
		ProposalID:    aggregate.ProposalID,
		ForVotes:      ParseBigInt(aggregate.ForVotes),
		AgainstVotes:  ParseBigInt(aggregate.AgainstVotes),
		TotalVoters:   aggregate.TotalVoters,
		ForVoters:     aggregate.ForVoters,
		AgainstVoters: aggregate.AgainstVoters,
		Version:       aggregate.Version,
		UpdatedAt:     aggregate.UpdatedAt,
	}
}

// ParseBigInt parses a decimal string into a big.Int, returning zero for
// empty or malformed input rather than failing a read path
func ParseBigInt(value string) *big.Int {
	if value == "" {
		return big.NewInt(0)
	}
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return big.NewInt(0)
	}
	return parsed
}
