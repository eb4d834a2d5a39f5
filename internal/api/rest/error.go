package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/quorumpoint/qp-ledger/internal/api/shared/errors"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &apierrors.APIError{
		Code:    apierrors.ErrCodeBadRequest,
		Message: message,
	})
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err,
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps known domain errors onto HTTP statuses; anything
// unrecognized becomes an internal error
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidIntent):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrZeroResult):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrRatioOutOfRange):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrProposalNotFound):
		respondNotFound(c, "Proposal not found")
	case errors.Is(err, domain.ErrDuplicateVote):
		respondConflict(c, "Voter has already voted on this proposal")
	case errors.Is(err, domain.ErrVotingClosed):
		respondConflict(c, "Proposal no longer accepts votes")
	case errors.Is(err, domain.ErrNoVotingPower):
		respondConflict(c, "Voter has no voting power")
	case errors.Is(err, domain.ErrExternalSubmission):
		c.JSON(http.StatusBadGateway, apierrors.NewServiceError("On-chain submission failed"))
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
