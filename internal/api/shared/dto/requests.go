package dto

import (
	"fmt"
	"time"

	"github.com/quorumpoint/qp-ledger/internal/api/shared/constants"
	apierrors "github.com/quorumpoint/qp-ledger/internal/api/shared/errors"
	"github.com/quorumpoint/qp-ledger/internal/domain"
)

// EarnPointsRequest represents the request body for crediting earned points
type EarnPointsRequest struct {
	UserID      string `json:"user_id"`
	PointType   string `json:"point_type"` // "main" or "sub"
	Amount      int64  `json:"amount"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

// Validate validates the request body
func (r *EarnPointsRequest) Validate() error {
	if r.UserID == "" {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.PointType != "main" && r.PointType != "sub" {
		return apierrors.NewValidationError("point_type must be \"main\" or \"sub\"")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	if !domain.IsValidPointSource(domain.PointSource(r.Source)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported source: %s", r.Source))
	}
	return nil
}

// Kind returns the ledger entry kind for the requested point type
func (r *EarnPointsRequest) Kind() domain.EntryKind {
	if r.PointType == "main" {
		return domain.KindMainEarn
	}
	return domain.KindSubEarn
}

// ConvertPointsRequest represents the request body for converting sub points
// into main points
type ConvertPointsRequest struct {
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Validate validates the request body
func (r *ConvertPointsRequest) Validate() error {
	if r.UserID == "" {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// ExchangePointsRequest represents the request body for exchanging main
// points into tokens
type ExchangePointsRequest struct {
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Validate validates the request body
func (r *ExchangePointsRequest) Validate() error {
	if r.UserID == "" {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// UpdateRatiosRequest represents the request body for updating the
// conversion ratios
type UpdateRatiosRequest struct {
	SubToMain   int `json:"sub_to_main"`
	MainToToken int `json:"main_to_token"`
}

// Validate validates the request body
func (r *UpdateRatiosRequest) Validate() error {
	if r.SubToMain < 1 || r.SubToMain > 100 {
		return apierrors.NewValidationError("sub_to_main must be between 1 and 100")
	}
	if r.MainToToken < 1 || r.MainToToken > 100 {
		return apierrors.NewValidationError("main_to_token must be between 1 and 100")
	}
	return nil
}

// CreateProposalRequest represents the request body for creating a proposal
type CreateProposalRequest struct {
	ProposerID  string    `json:"proposer_id"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
}

// Validate validates the request body
func (r *CreateProposalRequest) Validate() error {
	if r.ProposerID == "" {
		return apierrors.NewValidationError("proposer_id is required")
	}
	if r.Description == "" {
		return apierrors.NewValidationError("description is required")
	}
	if len(r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description exceeds %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if r.Deadline.IsZero() {
		return apierrors.NewValidationError("deadline is required")
	}
	return nil
}

// CastVoteRequest represents the request body for casting a vote
type CastVoteRequest struct {
	VoterID string `json:"voter_id"`
	Support *bool  `json:"support"`
}

// Validate validates the request body
func (r *CastVoteRequest) Validate() error {
	if r.VoterID == "" {
		return apierrors.NewValidationError("voter_id is required")
	}
	if r.Support == nil {
		return apierrors.NewValidationError("support is required")
	}
	return nil
}
