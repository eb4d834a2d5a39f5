package domain

import (
	"math/big"
	"time"
)

// EntryKind represents the kind of a ledger entry. It is a closed set;
// the transition executor matches on it exhaustively.
type EntryKind string

const (
	KindMainEarn            EntryKind = "main_earn"
	KindSubEarn             EntryKind = "sub_earn"
	KindSubToMainConversion EntryKind = "sub_to_main_conversion"
	KindMainToTokenExchange EntryKind = "main_to_token_exchange"
	KindVoteCast            EntryKind = "vote_cast"
)

// IsValidEntryKind checks if an entry kind is valid
func IsValidEntryKind(kind EntryKind) bool {
	switch kind {
	case KindMainEarn, KindSubEarn, KindSubToMainConversion, KindMainToTokenExchange, KindVoteCast:
		return true
	}
	return false
}

// PointSource represents the origin of an earned point amount
type PointSource string

const (
	SourceTask       PointSource = "task"
	SourceReferral   PointSource = "referral"
	SourceCheckIn    PointSource = "check_in"
	SourcePromotion  PointSource = "promotion"
	SourceConversion PointSource = "conversion"
	SourceExchange   PointSource = "exchange"
	SourceGovernance PointSource = "governance"
)

// IsValidPointSource checks if a point source is valid
func IsValidPointSource(source PointSource) bool {
	switch source {
	case SourceTask, SourceReferral, SourceCheckIn, SourcePromotion,
		SourceConversion, SourceExchange, SourceGovernance:
		return true
	}
	return false
}

// EntryStatus represents the lifecycle status of a ledger entry.
// Pending is the only non-terminal status; a confirmed or failed entry
// is immutable.
type EntryStatus string

const (
	StatusPending   EntryStatus = "pending"
	StatusConfirmed EntryStatus = "confirmed"
	StatusFailed    EntryStatus = "failed"
)

// Terminal reports whether the status is final
func (s EntryStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// PointIntent represents a request to change a user's point balances.
// Amount is always the source-side amount of the mutation.
type PointIntent struct {
	Kind        EntryKind   `json:"kind"`
	UserID      string      `json:"user_id"`
	Amount      int64       `json:"amount"`
	Source      PointSource `json:"source,omitempty"`
	Description string      `json:"description,omitempty"`
}

// LedgerEntry is the audit record of an attempted balance- or
// vote-changing intent in its current lifecycle state
type LedgerEntry struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Kind        EntryKind   `json:"kind"`
	Source      PointSource `json:"source,omitempty"`
	Status      EntryStatus `json:"status"`
	Description string      `json:"description,omitempty"`

	// Exactly one of the four amounts below is set, depending on Kind
	MainEarnAmount      *int64 `json:"main_earn_amount,omitempty"`
	SubEarnAmount       *int64 `json:"sub_earn_amount,omitempty"`
	SubConvertedAmount  *int64 `json:"sub_converted_amount,omitempty"`
	MainExchangedAmount *int64 `json:"main_exchanged_amount,omitempty"`

	// Derived outputs captured at intent time so historical entries stay
	// reproducible after ratio changes
	MainReceived   *int64 `json:"main_received,omitempty"`
	TokensReceived *int64 `json:"tokens_received,omitempty"`
	RatioApplied   *int   `json:"ratio_applied,omitempty"`

	// Vote fields, set only for KindVoteCast
	ProposalID  *int64   `json:"proposal_id,omitempty"`
	Support     *bool    `json:"support,omitempty"`
	VotingPower *big.Int `json:"voting_power,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	// FailureReason explains a failed entry to the caller. It is derived at
	// execution time, never persisted.
	FailureReason string `json:"failure_reason,omitempty"`
}

// PointBalance is the materialized per-user balance aggregate
type PointBalance struct {
	UserID       string    `json:"user_id"`
	MainPoint    int64     `json:"main_point"`
	SubPoint     int64     `json:"sub_point"`
	TokenBalance int64     `json:"token_balance"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Proposal represents a governance proposal whose identifier is
// synchronized with the Governor contract
type Proposal struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	ProposerID  string    `json:"proposer_id"`
	Deadline    time.Time `json:"deadline"`
	Executed    bool      `json:"executed"`
	Canceled    bool      `json:"canceled"`
	TxHash      string    `json:"tx_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Votable reports whether the proposal accepts votes at the given time
func (p *Proposal) Votable(now time.Time) bool {
	return !p.Executed && !p.Canceled && now.Before(p.Deadline)
}

// UserVote is a single immutable vote by a voter on a proposal
type UserVote struct {
	ID          int64     `json:"id"`
	ProposalID  int64     `json:"proposal_id"`
	VoterID     string    `json:"voter_id"`
	Support     bool      `json:"support"`
	VotingPower *big.Int  `json:"voting_power"`
	TxHash      string    `json:"tx_hash,omitempty"`
	VotedAt     time.Time `json:"voted_at"`
}

// VoteTally is the materialized per-proposal vote aggregate
type VoteTally struct {
	ProposalID    int64     `json:"proposal_id"`
	ForVotes      *big.Int  `json:"for_votes"`
	AgainstVotes  *big.Int  `json:"against_votes"`
	TotalVoters   int64     `json:"total_voters"`
	ForVoters     int64     `json:"for_voters"`
	AgainstVoters int64     `json:"against_voters"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LedgerEventType represents the type of a published ledger event
type LedgerEventType string

const (
	EventEntryConfirmed  LedgerEventType = "entry_confirmed"
	EventProposalCreated LedgerEventType = "proposal_created"
	EventVoteCast        LedgerEventType = "vote_cast"
)

// LedgerEvent is the normalized event published to NATS whenever a
// ledger entry reaches a terminal state or a governance object is created
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	UserID     string          `json:"user_id,omitempty"`
	EntryID    string          `json:"entry_id,omitempty"`
	Kind       EntryKind       `json:"kind,omitempty"`
	ProposalID *int64          `json:"proposal_id,omitempty"`
	TxHash     string          `json:"tx_hash,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
