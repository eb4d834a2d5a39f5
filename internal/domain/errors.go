package domain

import "errors"

var (
	// ErrInvalidIntent is returned when an intent fails validation before any write
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrInsufficientBalance is the failure reason carried by a failed entry
	// whose conditional decrement found less balance than requested; it is
	// never returned as an error from Execute
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrZeroResult is returned when a conversion or exchange would truncate
	// to a zero destination amount
	ErrZeroResult = errors.New("conversion result rounds to zero")

	// ErrDuplicateVote is returned when a voter already voted on a proposal
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrVotingClosed is returned when a proposal no longer accepts votes
	ErrVotingClosed = errors.New("voting closed")

	// ErrNoVotingPower is returned when a voter has no token balance to vote with
	ErrNoVotingPower = errors.New("no voting power")

	// ErrProposalNotFound is returned when a proposal is not found
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrExternalSubmission is returned when the on-chain submission failed;
	// the reserved sequence id is abandoned
	ErrExternalSubmission = errors.New("external submission failed")

	// ErrAggregateUpdateFailed is returned when an aggregate update affected
	// zero rows after validation passed; an integrity concern for the reconciler
	ErrAggregateUpdateFailed = errors.New("aggregate update failed")

	// ErrRatioOutOfRange is returned when a conversion ratio update falls
	// outside [1,100]
	ErrRatioOutOfRange = errors.New("ratio out of range")
)
