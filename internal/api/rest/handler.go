package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quorumpoint/qp-ledger/internal/api/shared/constants"
	"github.com/quorumpoint/qp-ledger/internal/api/shared/dto"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/governance"
	"github.com/quorumpoint/qp-ledger/internal/ledger"
	"github.com/quorumpoint/qp-ledger/internal/store"
	"github.com/quorumpoint/qp-ledger/internal/types"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// EarnPoints credits earned main or sub points
	// POST /api/v1/points/earn
	EarnPoints(c *gin.Context)

	// ConvertPoints converts sub points into main points
	// POST /api/v1/points/convert
	ConvertPoints(c *gin.Context)

	// ExchangePoints exchanges main points for tokens
	// POST /api/v1/points/exchange
	ExchangePoints(c *gin.Context)

	// GetBalance retrieves a user's balance aggregate
	// GET /api/v1/balances/:user_id
	GetBalance(c *gin.Context)

	// ListLedgerEntries retrieves a user's ledger entries, newest first
	// GET /api/v1/users/:user_id/ledger?status=<status>&kind=<kind>&limit=<limit>&offset=<offset>
	ListLedgerEntries(c *gin.Context)

	// GetRatios retrieves the conversion ratios currently in effect
	// GET /api/v1/ratios
	GetRatios(c *gin.Context)

	// UpdateRatios updates the conversion ratios (requires authentication)
	// PUT /api/v1/ratios
	UpdateRatios(c *gin.Context)

	// CreateProposal creates a proposal synchronized with the Governor contract
	// POST /api/v1/proposals
	CreateProposal(c *gin.Context)

	// ListProposals retrieves proposals, newest first
	// GET /api/v1/proposals?limit=<limit>&offset=<offset>
	ListProposals(c *gin.Context)

	// GetProposal retrieves a proposal by id
	// GET /api/v1/proposals/:id
	GetProposal(c *gin.Context)

	// ExecuteProposal marks a proposal as executed (requires authentication)
	// POST /api/v1/proposals/:id/execute
	ExecuteProposal(c *gin.Context)

	// CancelProposal marks a proposal as canceled (requires authentication)
	// POST /api/v1/proposals/:id/cancel
	CancelProposal(c *gin.Context)

	// CastVote casts a vote on a proposal
	// POST /api/v1/proposals/:id/votes
	CastVote(c *gin.Context)

	// ListVotes retrieves a proposal's votes, newest first
	// GET /api/v1/proposals/:id/votes?limit=<limit>&offset=<offset>
	ListVotes(c *gin.Context)

	// GetTally retrieves a proposal's materialized vote tally
	// GET /api/v1/proposals/:id/tally
	GetTally(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor  ledger.Executor
	proposals governance.ProposalService
	voting    governance.VotingService
	store     store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(
	executor ledger.Executor,
	proposals governance.ProposalService,
	voting governance.VotingService,
	dataStore store.Store,
) Handler {
	return &handler{
		executor:  executor,
		proposals: proposals,
		voting:    voting,
		store:     dataStore,
	}
}

// EarnPoints credits earned main or sub points
func (h *handler) EarnPoints(c *gin.Context) {
	var req dto.EarnPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entry, err := h.executor.Execute(c.Request.Context(), domain.PointIntent{
		Kind:        req.Kind(),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Source:      domain.PointSource(req.Source),
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.NewLedgerEntryResponse(entry))
}

// ConvertPoints converts sub points into main points
func (h *handler) ConvertPoints(c *gin.Context) {
	var req dto.ConvertPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// A failed entry is a valid outcome here: an insufficient balance is
	// reported through the entry's status, not as a request error
	entry, err := h.executor.Execute(c.Request.Context(), domain.PointIntent{
		Kind:        domain.KindSubToMainConversion,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.NewLedgerEntryResponse(entry))
}

// ExchangePoints exchanges main points for tokens
func (h *handler) ExchangePoints(c *gin.Context) {
	var req dto.ExchangePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entry, err := h.executor.Execute(c.Request.Context(), domain.PointIntent{
		Kind:        domain.KindMainToTokenExchange,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.NewLedgerEntryResponse(entry))
}

// GetBalance retrieves a user's balance aggregate
func (h *handler) GetBalance(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	balance, err := h.store.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get balance")
		return
	}

	// An absent row reads as a zero balance
	c.JSON(200, dto.NewBalanceResponse(types.PointBalanceToDomain(userID, balance)))
}

// ListLedgerEntries retrieves a user's ledger entries, newest first
func (h *handler) ListLedgerEntries(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	limit, offset, ok := parsePagination(c, constants.DEFAULT_ENTRIES_LIMIT)
	if !ok {
		return
	}

	filter := store.LedgerEntryFilter{Limit: limit, Offset: offset}
	if raw := c.Query("status"); raw != "" {
		status := domain.EntryStatus(raw)
		if status != domain.StatusPending && !status.Terminal() {
			respondValidationError(c, "status must be one of pending, confirmed, failed")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("kind"); raw != "" {
		kind := domain.EntryKind(raw)
		if !domain.IsValidEntryKind(kind) {
			respondValidationError(c, "unsupported kind")
			return
		}
		filter.Kind = &kind
	}

	rows, total, err := h.store.ListLedgerEntries(c.Request.Context(), userID, filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list ledger entries")
		return
	}

	entries := make([]*dto.LedgerEntryResponse, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.NewLedgerEntryResponse(types.LedgerEntryToDomain(row)))
	}

	c.JSON(200, dto.ListLedgerEntriesResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetRatios retrieves the conversion ratios currently in effect
func (h *handler) GetRatios(c *gin.Context) {
	subToMain, mainToToken := h.executor.Ratios()
	c.JSON(200, dto.RatiosResponse{
		SubToMain:   subToMain,
		MainToToken: mainToToken,
	})
}

// UpdateRatios updates the conversion ratios
func (h *handler) UpdateRatios(c *gin.Context) {
	var req dto.UpdateRatiosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.executor.SetRatios(req.SubToMain, req.MainToToken); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.RatiosResponse{
		SubToMain:   req.SubToMain,
		MainToToken: req.MainToToken,
	})
}

// CreateProposal creates a proposal synchronized with the Governor contract
func (h *handler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	proposal, err := h.proposals.Create(c.Request.Context(), req.ProposerID, req.Description, req.Deadline)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(201, dto.NewProposalResponse(proposal))
}

// ListProposals retrieves proposals, newest first
func (h *handler) ListProposals(c *gin.Context) {
	limit, offset, ok := parsePagination(c, constants.DEFAULT_PROPOSALS_LIMIT)
	if !ok {
		return
	}

	proposals, total, err := h.proposals.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list proposals")
		return
	}

	items := make([]*dto.ProposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		items = append(items, dto.NewProposalResponse(proposal))
	}

	c.JSON(200, dto.ListProposalsResponse{
		Proposals: items,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// GetProposal retrieves a proposal by id
func (h *handler) GetProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	proposal, err := h.proposals.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.NewProposalResponse(proposal))
}

// ExecuteProposal marks a proposal as executed
func (h *handler) ExecuteProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	if err := h.proposals.MarkExecuted(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(204)
}

// CancelProposal marks a proposal as canceled
func (h *handler) CancelProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	if err := h.proposals.MarkCanceled(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(204)
}

// CastVote casts a vote on a proposal
func (h *handler) CastVote(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	vote, err := h.voting.CastVote(c.Request.Context(), id, req.VoterID, *req.Support)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(201, dto.NewVoteResponse(vote))
}

// ListVotes retrieves a proposal's votes, newest first
func (h *handler) ListVotes(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	limit, offset, pagOK := parsePagination(c, constants.DEFAULT_VOTES_LIMIT)
	if !pagOK {
		return
	}

	votes, total, err := h.voting.ListVotes(c.Request.Context(), id, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list votes")
		return
	}

	items := make([]*dto.VoteResponse, 0, len(votes))
	for _, vote := range votes {
		items = append(items, dto.NewVoteResponse(vote))
	}

	c.JSON(200, dto.ListVotesResponse{
		Votes:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetTally retrieves a proposal's materialized vote tally
func (h *handler) GetTally(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	tally, err := h.voting.Tally(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(200, dto.NewTallyResponse(tally))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// parseProposalID parses the :id path parameter; on failure it responds and
// reports false
func parseProposalID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid proposal ID")
		return 0, false
	}
	return id, true
}

// parsePagination parses limit and offset query parameters; on failure it
// responds and reports false
func parsePagination(c *gin.Context, defaultLimit int) (limit, offset int, ok bool) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > constants.MAX_PAGE_SIZE {
			respondValidationError(c, "limit must be between 1 and 100")
			return 0, 0, false
		}
		limit = parsed
	}
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondValidationError(c, "offset must be non-negative")
			return 0, 0, false
		}
		offset = parsed
	}
	return limit, offset, true
}
