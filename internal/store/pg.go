package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// =============================================================================
// Ledger entries
// =============================================================================

// CreateLedgerEntry inserts a new pending ledger entry
func (s *pgStore) CreateLedgerEntry(ctx context.Context, entry *schema.LedgerEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// FinalizeLedgerEntry transitions a pending entry to a terminal status.
// The update is keyed on (id, status=pending) so a pending entry is never
// finalized by more than one execution path.
func (s *pgStore) FinalizeLedgerEntry(ctx context.Context, entryID string, status domain.EntryStatus, confirmedAt time.Time) error {
	if !status.Terminal() {
		return fmt.Errorf("cannot finalize ledger entry %s to non-terminal status %s", entryID, status)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.LedgerEntry{}).
		Where("id = ? AND status = ?", entryID, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":       string(status),
			"confirmed_at": confirmedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ledger entry %s is not pending", entryID)
	}

	return nil
}

// GetLedgerEntry retrieves a ledger entry by id
func (s *pgStore) GetLedgerEntry(ctx context.Context, entryID string) (*schema.LedgerEntry, error) {
	var entry schema.LedgerEntry
	err := s.db.WithContext(ctx).Where("id = ?", entryID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

// ListLedgerEntries retrieves a user's ledger entries, newest first
func (s *pgStore) ListLedgerEntries(ctx context.Context, userID string, filter LedgerEntryFilter) ([]*schema.LedgerEntry, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerEntry{}).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var entries []*schema.LedgerEntry
	err := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, total, nil
}

// ListLedgerUserIDs retrieves the distinct user ids present in the ledger
func (s *pgStore) ListLedgerUserIDs(ctx context.Context) ([]string, error) {
	var userIDs []string
	err := s.db.WithContext(ctx).
		Model(&schema.LedgerEntry{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger user ids: %w", err)
	}
	return userIDs, nil
}

// =============================================================================
// Point balances
// =============================================================================

// EnsureBalance creates a zero balance row for the user if absent.
// A concurrent duplicate create is treated as "already exists, proceed".
func (s *pgStore) EnsureBalance(ctx context.Context, userID string) error {
	balance := schema.PointBalance{UserID: userID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&balance).Error
	if err != nil {
		return fmt.Errorf("failed to ensure balance: %w", err)
	}
	return nil
}

// GetBalance retrieves a user's balance aggregate, nil if absent
func (s *pgStore) GetBalance(ctx context.Context, userID string) (*schema.PointBalance, error) {
	var balance schema.PointBalance
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// AddMainPoints unconditionally increments a user's main point balance
func (s *pgStore) AddMainPoints(ctx context.Context, userID string, amount int64) error {
	return s.addPoints(ctx, userID, "main_point", amount)
}

// AddSubPoints unconditionally increments a user's sub point balance
func (s *pgStore) AddSubPoints(ctx context.Context, userID string, amount int64) error {
	return s.addPoints(ctx, userID, "sub_point", amount)
}

func (s *pgStore) addPoints(ctx context.Context, userID string, column string, amount int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.PointBalance{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", amount),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to add %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("balance row missing for user %s: %w", userID, domain.ErrAggregateUpdateFailed)
	}
	return nil
}

// ConvertSubToMain atomically decrements sub points and credits main points
// iff the current sub balance covers subAmount. The predicate lives inside the
// UPDATE itself; this must never be weakened to a read-then-write pair.
func (s *pgStore) ConvertSubToMain(ctx context.Context, userID string, subAmount, mainReceived int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.PointBalance{}).
		Where("user_id = ? AND sub_point >= ?", userID, subAmount).
		Updates(map[string]interface{}{
			"sub_point":  gorm.Expr("sub_point - ?", subAmount),
			"main_point": gorm.Expr("main_point + ?", mainReceived),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to convert sub to main: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ExchangeMainForTokens atomically decrements main points and credits tokens
// iff the current main balance covers mainAmount
func (s *pgStore) ExchangeMainForTokens(ctx context.Context, userID string, mainAmount, tokensReceived int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.PointBalance{}).
		Where("user_id = ? AND main_point >= ?", userID, mainAmount).
		Updates(map[string]interface{}{
			"main_point":    gorm.Expr("main_point - ?", mainAmount),
			"token_balance": gorm.Expr("token_balance + ?", tokensReceived),
			"updated_at":    gorm.Expr("now()"),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to exchange main for tokens: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// OverwriteBalance replaces a user's balance aggregate in a single statement
func (s *pgStore) OverwriteBalance(ctx context.Context, balance *schema.PointBalance) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"main_point":    balance.MainPoint,
			"sub_point":     balance.SubPoint,
			"token_balance": balance.TokenBalance,
			"updated_at":    gorm.Expr("now()"),
		}),
	}).Create(balance).Error
	if err != nil {
		return fmt.Errorf("failed to overwrite balance: %w", err)
	}
	return nil
}

// SumConfirmedEntries computes per-category sums over the user's confirmed
// ledger entries
func (s *pgStore) SumConfirmedEntries(ctx context.Context, userID string) (*BalanceTotals, error) {
	var totals BalanceTotals
	err := s.db.WithContext(ctx).
		Model(&schema.LedgerEntry{}).
		Select(`
			COALESCE(SUM(main_earn_amount), 0)      AS main_earned,
			COALESCE(SUM(main_received), 0)          AS main_received,
			COALESCE(SUM(main_exchanged_amount), 0)  AS main_exchanged,
			COALESCE(SUM(sub_earn_amount), 0)        AS sub_earned,
			COALESCE(SUM(sub_converted_amount), 0)   AS sub_converted,
			COALESCE(SUM(tokens_received), 0)        AS tokens_received`).
		Where("user_id = ? AND status = ?", userID, domain.StatusConfirmed).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum confirmed entries: %w", err)
	}
	return &totals, nil
}

// =============================================================================
// Proposals
// =============================================================================

// CreateProposal commits a proposal row under its externally confirmed id
func (s *pgStore) CreateProposal(ctx context.Context, proposal *schema.Proposal) error {
	if err := s.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

// GetProposal retrieves a proposal by id, nil if absent
func (s *pgStore) GetProposal(ctx context.Context, id int64) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return &proposal, nil
}

// ListProposals retrieves proposals, newest first
func (s *pgStore) ListProposals(ctx context.Context, limit, offset int) ([]*schema.Proposal, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Proposal{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var proposals []*schema.Proposal
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&proposals).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list proposals: %w", err)
	}

	return proposals, total, nil
}

// ListProposalIDs retrieves all proposal ids
func (s *pgStore) ListProposalIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.Proposal{}).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proposal ids: %w", err)
	}
	return ids, nil
}

// MarkProposalExecuted sets the executed flag. The predicate keeps executed
// and canceled mutually exclusive.
func (s *pgStore) MarkProposalExecuted(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Proposal{}).
		Where("id = ? AND executed = false AND canceled = false", id).
		Update("executed", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark proposal executed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkProposalCanceled sets the canceled flag. The predicate keeps executed
// and canceled mutually exclusive.
func (s *pgStore) MarkProposalCanceled(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Proposal{}).
		Where("id = ? AND executed = false AND canceled = false", id).
		Update("canceled", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark proposal canceled: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Votes
// =============================================================================

// CastVote inserts the vote and applies the tally increments in one
// transaction. The unique index on (proposal_id, voter_id) is the final
// authority against duplicate votes: a conflicting insert affects zero rows
// and rolls the whole transaction back.
func (s *pgStore) CastVote(ctx context.Context, vote *schema.UserVote) (*schema.UserVote, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Make sure the tally row exists before incrementing so the
		// increment below can never affect zero rows for a missing aggregate
		aggregate := schema.VoteAggregate{ProposalID: vote.ProposalID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}},
			DoNothing: true,
		}).Create(&aggregate).Error; err != nil {
			return fmt.Errorf("failed to ensure vote aggregate: %w", err)
		}

		// 2. Insert the vote; a conflict means this voter already voted
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}, {Name: "voter_id"}},
			DoNothing: true,
		}).Create(vote)
		if result.Error != nil {
			return fmt.Errorf("failed to insert user vote: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrDuplicateVote
		}

		// 3. Blind atomic increments; version is bumped in the same statement
		powerColumn := "against_votes"
		voterColumn := "against_voters"
		if vote.Support {
			powerColumn = "for_votes"
			voterColumn = "for_voters"
		}

		update := tx.Model(&schema.VoteAggregate{}).
			Where("proposal_id = ?", vote.ProposalID).
			Updates(map[string]interface{}{
				powerColumn:    gorm.Expr(powerColumn+" + ?::numeric", vote.VotingPower),
				voterColumn:    gorm.Expr(voterColumn + " + 1"),
				"total_voters": gorm.Expr("total_voters + 1"),
				"version":      gorm.Expr("version + 1"),
				"updated_at":   gorm.Expr("now()"),
			})
		if update.Error != nil {
			return fmt.Errorf("failed to update vote aggregate: %w", update.Error)
		}
		if update.RowsAffected == 0 {
			return domain.ErrAggregateUpdateFailed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vote, nil
}

// GetUserVote retrieves a vote by (proposal, voter), nil if absent
func (s *pgStore) GetUserVote(ctx context.Context, proposalID int64, voterID string) (*schema.UserVote, error) {
	var vote schema.UserVote
	err := s.db.WithContext(ctx).
		Where("proposal_id = ? AND voter_id = ?", proposalID, voterID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user vote: %w", err)
	}
	return &vote, nil
}

// ListVotes retrieves a proposal's votes, newest first
func (s *pgStore) ListVotes(ctx context.Context, proposalID int64, limit, offset int) ([]*schema.UserVote, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&schema.UserVote{}).
		Where("proposal_id = ?", proposalID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var votes []*schema.UserVote
	err = s.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("voted_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&votes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list votes: %w", err)
	}

	return votes, total, nil
}

// GetVoteAggregate retrieves a proposal's tally, nil if absent
func (s *pgStore) GetVoteAggregate(ctx context.Context, proposalID int64) (*schema.VoteAggregate, error) {
	var aggregate schema.VoteAggregate
	err := s.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&aggregate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote aggregate: %w", err)
	}
	return &aggregate, nil
}

// OverwriteVoteAggregate replaces a proposal's tally in a single statement
func (s *pgStore) OverwriteVoteAggregate(ctx context.Context, aggregate *schema.VoteAggregate) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "proposal_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"for_votes":      aggregate.ForVotes,
			"against_votes":  aggregate.AgainstVotes,
			"total_voters":   aggregate.TotalVoters,
			"for_voters":     aggregate.ForVoters,
			"against_voters": aggregate.AgainstVoters,
			"version":        gorm.Expr("vote_aggregates.version + 1"),
			"updated_at":     gorm.Expr("now()"),
		}),
	}).Create(aggregate).Error
	if err != nil {
		return fmt.Errorf("failed to overwrite vote aggregate: %w", err)
	}
	return nil
}

// SumVotes computes tally sums over the proposal's user_votes rows
func (s *pgStore) SumVotes(ctx context.Context, proposalID int64) (*VoteTotals, error) {
	var totals VoteTotals
	err := s.db.WithContext(ctx).
		Model(&schema.UserVote{}).
		Select(`
			COALESCE(SUM(voting_power) FILTER (WHERE support), 0)::text       AS for_votes,
			COALESCE(SUM(voting_power) FILTER (WHERE NOT support), 0)::text   AS against_votes,
			COUNT(*) FILTER (WHERE support)                                    AS for_voters,
			COUNT(*) FILTER (WHERE NOT support)                                AS against_voters`).
		Where("proposal_id = ?", proposalID).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum votes: %w", err)
	}
	return &totals, nil
}
