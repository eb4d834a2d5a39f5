package dto

import (
	"time"

	"github.com/quorumpoint/qp-ledger/internal/domain"
)

// LedgerEntryResponse represents a ledger entry in API responses
type LedgerEntryResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Kind        string `json:"kind"`
	Source      string `json:"source,omitempty"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`

	MainEarnAmount      *int64 `json:"main_earn_amount,omitempty"`
	SubEarnAmount       *int64 `json:"sub_earn_amount,omitempty"`
	SubConvertedAmount  *int64 `json:"sub_converted_amount,omitempty"`
	MainExchangedAmount *int64 `json:"main_exchanged_amount,omitempty"`
	MainReceived        *int64 `json:"main_received,omitempty"`
	TokensReceived      *int64 `json:"tokens_received,omitempty"`
	RatioApplied        *int   `json:"ratio_applied,omitempty"`

	ProposalID  *int64 `json:"proposal_id,omitempty"`
	Support     *bool  `json:"support,omitempty"`
	VotingPower string `json:"voting_power,omitempty"`

	CreatedAt     time.Time  `json:"created_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

// NewLedgerEntryResponse maps a domain ledger entry into its API shape
func NewLedgerEntryResponse(entry *domain.LedgerEntry) *LedgerEntryResponse {
	resp := &LedgerEntryResponse{
		ID:                  entry.ID,
		UserID:              entry.UserID,
		Kind:                string(entry.Kind),
		Source:              string(entry.Source),
		Status:              string(entry.Status),
		Description:         entry.Description,
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
		FailureReason:       entry.FailureReason,
	}
	if entry.VotingPower != nil {
		resp.VotingPower = entry.VotingPower.String()
	}
	return resp
}

// ListLedgerEntriesResponse represents a page of ledger entries
type ListLedgerEntriesResponse struct {
	Entries []*LedgerEntryResponse `json:"entries"`
	Total   int64                  `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// BalanceResponse represents a user's balance aggregate
type BalanceResponse struct {
	UserID       string    `json:"user_id"`
	MainPoint    int64     `json:"main_point"`
	SubPoint     int64     `json:"sub_point"`
	TokenBalance int64     `json:"token_balance"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewBalanceResponse maps a domain balance into its API shape
func NewBalanceResponse(balance *domain.PointBalance) *BalanceResponse {
	return &BalanceResponse{
		UserID:       balance.UserID,
		MainPoint:    balance.MainPoint,
		SubPoint:     balance.SubPoint,
		TokenBalance: balance.TokenBalance,
		UpdatedAt:    balance.UpdatedAt,
	}
}

// RatiosResponse represents the conversion ratios currently in effect
type RatiosResponse struct {
	SubToMain   int `json:"sub_to_main"`
	MainToToken int `json:"main_to_token"`
}

// ProposalResponse represents a proposal in API responses
type ProposalResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ProposerID  string    `json:"proposer_id"`
	Deadline    time.Time `json:"deadline"`
	Executed    bool      `json:"executed"`
	Canceled    bool      `json:"canceled"`
	TxHash      string    `json:"tx_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProposalResponse maps a domain proposal into its API shape
func NewProposalResponse(proposal *domain.Proposal) *ProposalResponse {
	return &ProposalResponse{
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

// ListProposalsResponse represents a page of proposals
type ListProposalsResponse struct {
	Proposals []*ProposalResponse `json:"proposals"`
	Total     int64               `json:"total"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// VoteResponse represents a vote in API responses
type VoteResponse struct {
	ProposalID  int64     `json:"proposal_id"`
	VoterID     string    `json:"voter_id"`
	Support     bool      `json:"support"`
	VotingPower string    `json:"voting_power"`
	TxHash      string    `json:"tx_hash,omitempty"`
	VotedAt     time.Time `json:"voted_at"`
}

// NewVoteResponse maps a domain vote into its API shape
func NewVoteResponse(vote *domain.UserVote) *VoteResponse {
	resp := &VoteResponse{
		ProposalID: vote.ProposalID,
		VoterID:    vote.VoterID,
		Support:    vote.Support,
		TxHash:     vote.TxHash,
		VotedAt:    vote.VotedAt,
	}
	if vote.VotingPower != nil {
		resp.VotingPower = vote.VotingPower.String()
	}
	return resp
}

// ListVotesResponse represents a page of votes
type ListVotesResponse struct {
	Votes  []*VoteResponse `json:"votes"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// TallyResponse represents a proposal's materialized vote tally
type TallyResponse struct {
	ProposalID    int64     `json:"proposal_id"`
	ForVotes      string    `json:"for_votes"`
	AgainstVotes  string    `json:"against_votes"`
	TotalVoters   int64     `json:"total_voters"`
	ForVoters     int64     `json:"for_voters"`
	AgainstVoters int64     `json:"against_voters"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTallyResponse maps a domain tally into its API shape
func NewTallyResponse(tally *domain.VoteTally) *TallyResponse {
	return &TallyResponse{
		ProposalID:    tally.ProposalID,
		ForVotes:      tally.ForVotes.String(),
		AgainstVotes:  tally.AgainstVotes.String(),
		TotalVoters:   tally.TotalVoters,
		ForVoters:     tally.ForVoters,
		AgainstVoters: tally.AgainstVoters,
		Version:       tally.Version,
		UpdatedAt:     tally.UpdatedAt,
	}
}
