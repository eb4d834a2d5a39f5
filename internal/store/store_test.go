package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildEarnEntry creates a pending earn entry for the user
func buildEarnEntry(userID string, kind domain.EntryKind, amount int64) *schema.LedgerEntry {
	source := string(domain.SourceTask)
	entry := &schema.LedgerEntry{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Kind:      string(kind),
		Source:    &source,
		Status:    string(domain.StatusPending),
		CreatedAt: time.Now().UTC(),
	}
	switch kind {
	case domain.KindMainEarn:
		entry.MainEarnAmount = &amount
	case domain.KindSubEarn:
		entry.SubEarnAmount = &amount
	}
	return entry
}

// buildConversionEntry creates a pending sub-to-main conversion entry
func buildConversionEntry(userID string, amount, received int64, ratio int) *schema.LedgerEntry {
	source := string(domain.SourceConversion)
	return &schema.LedgerEntry{
		ID:                 ulid.Make().String(),
		UserID:             userID,
		Kind:               string(domain.KindSubToMainConversion),
		Source:             &source,
		Status:             string(domain.StatusPending),
		SubConvertedAmount: &amount,
		MainReceived:       &received,
		RatioApplied:       &ratio,
		CreatedAt:          time.Now().UTC(),
	}
}

// buildTestProposal creates a proposal row under the given id
func buildTestProposal(id int64) *schema.Proposal {
	return &schema.Proposal{
		ID:          id,
		Description: fmt.Sprintf("Proposal %d", id),
		ProposerID:  "proposer-1",
		Deadline:    time.Now().Add(24 * time.Hour).UTC(),
		TxHash:      fmt.Sprintf("0xtx%d", id),
		CreatedAt:   time.Now().UTC(),
	}
}

// buildTestVote creates a vote on the proposal
func buildTestVote(proposalID int64, voterID string, support bool, power string) *schema.UserVote {
	return &schema.UserVote{
		ProposalID:  proposalID,
		VoterID:     voterID,
		Support:     support,
		VotingPower: power,
		VotedAt:     time.Now().UTC(),
	}
}

// =============================================================================
// Test: Ledger entries
// =============================================================================

func testLedgerEntryLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("pending entry can be finalized exactly once", func(t *testing.T) {
		entry := buildEarnEntry("user-lifecycle", domain.KindMainEarn, 100)
		require.NoError(t, store.CreateLedgerEntry(ctx, entry))

		now := time.Now().UTC()
		require.NoError(t, store.FinalizeLedgerEntry(ctx, entry.ID, domain.StatusConfirmed, now))

		got, err := store.GetLedgerEntry(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
		require.NotNil(t, got.ConfirmedAt)

		// A second finalization must not overwrite the terminal status
		err = store.FinalizeLedgerEntry(ctx, entry.ID, domain.StatusFailed, time.Now().UTC())
		assert.Error(t, err)

		got, err = store.GetLedgerEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	})

	t.Run("finalizing to pending is rejected", func(t *testing.T) {
		entry := buildEarnEntry("user-lifecycle", domain.KindSubEarn, 50)
		require.NoError(t, store.CreateLedgerEntry(ctx, entry))

		err := store.FinalizeLedgerEntry(ctx, entry.ID, domain.StatusPending, time.Now().UTC())
		assert.Error(t, err)
	})

	t.Run("get returns nil for unknown entry", func(t *testing.T) {
		got, err := store.GetLedgerEntry(ctx, ulid.Make().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListLedgerEntries(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-list"

	for i := 0; i < 3; i++ {
		entry := buildEarnEntry(userID, domain.KindMainEarn, int64(10*(i+1)))
		require.NoError(t, store.CreateLedgerEntry(ctx, entry))
		require.NoError(t, store.FinalizeLedgerEntry(ctx, entry.ID, domain.StatusConfirmed, time.Now().UTC()))
	}
	failed := buildEarnEntry(userID, domain.KindSubEarn, 5)
	require.NoError(t, store.CreateLedgerEntry(ctx, failed))
	require.NoError(t, store.FinalizeLedgerEntry(ctx, failed.ID, domain.StatusFailed, time.Now().UTC()))

	t.Run("lists all entries for the user", func(t *testing.T) {
		entries, total, err := store.ListLedgerEntries(ctx, userID, LedgerEntryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, entries, 4)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := domain.StatusFailed
		entries, total, err := store.ListLedgerEntries(ctx, userID, LedgerEntryFilter{Status: &status, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, failed.ID, entries[0].ID)
	})

	t.Run("filters by kind", func(t *testing.T) {
		kind := domain.KindMainEarn
		_, total, err := store.ListLedgerEntries(ctx, userID, LedgerEntryFilter{Kind: &kind, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("paginates", func(t *testing.T) {
		entries, total, err := store.ListLedgerEntries(ctx, userID, LedgerEntryFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, entries, 2)
	})

	t.Run("unknown user returns empty page", func(t *testing.T) {
		entries, total, err := store.ListLedgerEntries(ctx, "user-unknown", LedgerEntryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, entries)
	})
}

func testListLedgerUserIDs(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateLedgerEntry(ctx, buildEarnEntry("user-a", domain.KindMainEarn, 1)))
	require.NoError(t, store.CreateLedgerEntry(ctx, buildEarnEntry("user-b", domain.KindMainEarn, 1)))
	require.NoError(t, store.CreateLedgerEntry(ctx, buildEarnEntry("user-a", domain.KindSubEarn, 1)))

	userIDs, err := store.ListLedgerUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-a", "user-b"}, userIDs)
}

// =============================================================================
// Test: Point balances
// =============================================================================

func testEnsureBalance(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-ensure"

	require.NoError(t, store.EnsureBalance(ctx, userID))

	balance, err := store.GetBalance(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, int64(0), balance.MainPoint)
	assert.Equal(t, int64(0), balance.SubPoint)
	assert.Equal(t, int64(0), balance.TokenBalance)

	// A second ensure is a no-op, not an error
	require.NoError(t, store.EnsureBalance(ctx, userID))

	// An existing balance is never reset by ensure
	require.NoError(t, store.AddMainPoints(ctx, userID, 42))
	require.NoError(t, store.EnsureBalance(ctx, userID))

	balance, err = store.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.MainPoint)
}

func testAddPoints(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-add"
	require.NoError(t, store.EnsureBalance(ctx, userID))

	t.Run("increments accumulate", func(t *testing.T) {
		require.NoError(t, store.AddMainPoints(ctx, userID, 10))
		require.NoError(t, store.AddMainPoints(ctx, userID, 15))
		require.NoError(t, store.AddSubPoints(ctx, userID, 7))

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), balance.MainPoint)
		assert.Equal(t, int64(7), balance.SubPoint)
	})

	t.Run("missing balance row is an error", func(t *testing.T) {
		err := store.AddMainPoints(ctx, "user-missing", 10)
		assert.ErrorIs(t, err, domain.ErrAggregateUpdateFailed)
	})
}

func testConvertSubToMain(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-convert"
	require.NoError(t, store.EnsureBalance(ctx, userID))
	require.NoError(t, store.AddSubPoints(ctx, userID, 95))

	t.Run("sufficient balance converts", func(t *testing.T) {
		applied, err := store.ConvertSubToMain(ctx, userID, 90, 9)
		require.NoError(t, err)
		assert.True(t, applied)

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), balance.SubPoint)
		assert.Equal(t, int64(9), balance.MainPoint)
	})

	t.Run("insufficient balance reports unapplied without changing the row", func(t *testing.T) {
		applied, err := store.ConvertSubToMain(ctx, userID, 6, 1)
		require.NoError(t, err)
		assert.False(t, applied)

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), balance.SubPoint)
		assert.Equal(t, int64(9), balance.MainPoint)
	})

	t.Run("exact balance converts to zero", func(t *testing.T) {
		applied, err := store.ConvertSubToMain(ctx, userID, 5, 1)
		require.NoError(t, err)
		assert.True(t, applied)

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.SubPoint)
	})
}

func testExchangeMainForTokens(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-exchange"
	require.NoError(t, store.EnsureBalance(ctx, userID))
	require.NoError(t, store.AddMainPoints(ctx, userID, 100))

	t.Run("sufficient balance exchanges", func(t *testing.T) {
		applied, err := store.ExchangeMainForTokens(ctx, userID, 80, 8)
		require.NoError(t, err)
		assert.True(t, applied)

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance.MainPoint)
		assert.Equal(t, int64(8), balance.TokenBalance)
	})

	t.Run("insufficient balance reports unapplied", func(t *testing.T) {
		applied, err := store.ExchangeMainForTokens(ctx, userID, 21, 2)
		require.NoError(t, err)
		assert.False(t, applied)

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance.MainPoint)
		assert.Equal(t, int64(8), balance.TokenBalance)
	})
}

func testOverwriteBalance(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-overwrite"

	t.Run("creates the row when absent", func(t *testing.T) {
		require.NoError(t, store.OverwriteBalance(ctx, &schema.PointBalance{
			UserID:       userID,
			MainPoint:    11,
			SubPoint:     22,
			TokenBalance: 3,
		}))

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(11), balance.MainPoint)
		assert.Equal(t, int64(22), balance.SubPoint)
		assert.Equal(t, int64(3), balance.TokenBalance)
	})

	t.Run("replaces the row when present", func(t *testing.T) {
		require.NoError(t, store.OverwriteBalance(ctx, &schema.PointBalance{
			UserID:       userID,
			MainPoint:    1,
			SubPoint:     2,
			TokenBalance: 0,
		}))

		balance, err := store.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), balance.MainPoint)
		assert.Equal(t, int64(2), balance.SubPoint)
		assert.Equal(t, int64(0), balance.TokenBalance)
	})
}

func testSumConfirmedEntries(t *testing.T, store Store) {
	ctx := context.Background()
	userID := "user-sum"

	confirm := func(entry *schema.LedgerEntry) {
		require.NoError(t, store.CreateLedgerEntry(ctx, entry))
		require.NoError(t, store.FinalizeLedgerEntry(ctx, entry.ID, domain.StatusConfirmed, time.Now().UTC()))
	}

	confirm(buildEarnEntry(userID, domain.KindMainEarn, 100))
	confirm(buildEarnEntry(userID, domain.KindSubEarn, 50))
	confirm(buildConversionEntry(userID, 30, 3, 10))

	// Failed and pending entries never count toward the sums
	failed := buildEarnEntry(userID, domain.KindMainEarn, 999)
	require.NoError(t, store.CreateLedgerEntry(ctx, failed))
	require.NoError(t, store.FinalizeLedgerEntry(ctx, failed.ID, domain.StatusFailed, time.Now().UTC()))
	require.NoError(t, store.CreateLedgerEntry(ctx, buildEarnEntry(userID, domain.KindMainEarn, 888)))

	totals, err := store.SumConfirmedEntries(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), totals.MainEarned)
	assert.Equal(t, int64(3), totals.MainReceived)
	assert.Equal(t, int64(0), totals.MainExchanged)
	assert.Equal(t, int64(50), totals.SubEarned)
	assert.Equal(t, int64(30), totals.SubConverted)
	assert.Equal(t, int64(0), totals.TokensReceived)

	assert.Equal(t, int64(103), totals.MainPoint())
	assert.Equal(t, int64(20), totals.SubPoint())
}

// =============================================================================
// Test: Proposals
// =============================================================================

func testProposals(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, store.CreateProposal(ctx, buildTestProposal(1)))

		proposal, err := store.GetProposal(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, proposal)
		assert.Equal(t, "Proposal 1", proposal.Description)
		assert.False(t, proposal.Executed)
		assert.False(t, proposal.Canceled)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := store.CreateProposal(ctx, buildTestProposal(1))
		assert.Error(t, err)
	})

	t.Run("get returns nil for unknown proposal", func(t *testing.T) {
		proposal, err := store.GetProposal(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, proposal)
	})

	t.Run("list newest first", func(t *testing.T) {
		require.NoError(t, store.CreateProposal(ctx, buildTestProposal(2)))
		require.NoError(t, store.CreateProposal(ctx, buildTestProposal(3)))

		proposals, total, err := store.ListProposals(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, proposals, 3)
		assert.Equal(t, int64(3), proposals[0].ID)

		ids, err := store.ListProposalIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids)
	})
}

func testProposalTerminalFlags(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateProposal(ctx, buildTestProposal(10)))
	require.NoError(t, store.CreateProposal(ctx, buildTestProposal(11)))

	t.Run("executed proposal cannot be canceled", func(t *testing.T) {
		changed, err := store.MarkProposalExecuted(ctx, 10)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = store.MarkProposalCanceled(ctx, 10)
		require.NoError(t, err)
		assert.False(t, changed)

		proposal, err := store.GetProposal(ctx, 10)
		require.NoError(t, err)
		assert.True(t, proposal.Executed)
		assert.False(t, proposal.Canceled)
	})

	t.Run("marking twice reports no change", func(t *testing.T) {
		changed, err := store.MarkProposalCanceled(ctx, 11)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = store.MarkProposalCanceled(ctx, 11)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("unknown proposal reports no change", func(t *testing.T) {
		changed, err := store.MarkProposalExecuted(ctx, 999)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

// =============================================================================
// Test: Votes
// =============================================================================

func testCastVote(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateProposal(ctx, buildTestProposal(20)))

	t.Run("first vote creates the tally", func(t *testing.T) {
		vote, err := store.CastVote(ctx, buildTestVote(20, "voter-1", true, "100"))
		require.NoError(t, err)
		require.NotNil(t, vote)

		aggregate, err := store.GetVoteAggregate(ctx, 20)
		require.NoError(t, err)
		require.NotNil(t, aggregate)
		assert.Equal(t, "100", aggregate.ForVotes)
		assert.Equal(t, "0", aggregate.AgainstVotes)
		assert.Equal(t, int64(1), aggregate.TotalVoters)
		assert.Equal(t, int64(1), aggregate.ForVoters)
		assert.Equal(t, int64(0), aggregate.AgainstVoters)
		assert.Equal(t, int64(1), aggregate.Version)
	})

	t.Run("votes accumulate on both sides", func(t *testing.T) {
		_, err := store.CastVote(ctx, buildTestVote(20, "voter-2", false, "40"))
		require.NoError(t, err)
		_, err = store.CastVote(ctx, buildTestVote(20, "voter-3", true, "60"))
		require.NoError(t, err)

		aggregate, err := store.GetVoteAggregate(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, "160", aggregate.ForVotes)
		assert.Equal(t, "40", aggregate.AgainstVotes)
		assert.Equal(t, int64(3), aggregate.TotalVoters)
		assert.Equal(t, int64(2), aggregate.ForVoters)
		assert.Equal(t, int64(1), aggregate.AgainstVoters)
		assert.Equal(t, int64(3), aggregate.Version)
	})

	t.Run("duplicate vote is rejected and leaves the tally untouched", func(t *testing.T) {
		_, err := store.CastVote(ctx, buildTestVote(20, "voter-1", false, "100"))
		assert.ErrorIs(t, err, domain.ErrDuplicateVote)

		aggregate, err := store.GetVoteAggregate(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, "160", aggregate.ForVotes)
		assert.Equal(t, "40", aggregate.AgainstVotes)
		assert.Equal(t, int64(3), aggregate.TotalVoters)
	})

	t.Run("get user vote", func(t *testing.T) {
		vote, err := store.GetUserVote(ctx, 20, "voter-1")
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.True(t, vote.Support)
		assert.Equal(t, "100", vote.VotingPower)

		vote, err = store.GetUserVote(ctx, 20, "voter-unknown")
		require.NoError(t, err)
		assert.Nil(t, vote)
	})

	t.Run("list votes", func(t *testing.T) {
		votes, total, err := store.ListVotes(ctx, 20, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, votes, 3)
	})
}

func testSumVotes(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateProposal(ctx, buildTestProposal(30)))

	t.Run("empty proposal sums to zero", func(t *testing.T) {
		totals, err := store.SumVotes(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, "0", totals.ForVotes)
		assert.Equal(t, "0", totals.AgainstVotes)
		assert.Equal(t, int64(0), totals.ForVoters)
		assert.Equal(t, int64(0), totals.AgainstVoters)
	})

	t.Run("sums match the votes", func(t *testing.T) {
		_, err := store.CastVote(ctx, buildTestVote(30, "voter-1", true, "25"))
		require.NoError(t, err)
		_, err = store.CastVote(ctx, buildTestVote(30, "voter-2", true, "75"))
		require.NoError(t, err)
		_, err = store.CastVote(ctx, buildTestVote(30, "voter-3", false, "10"))
		require.NoError(t, err)

		totals, err := store.SumVotes(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, "100", totals.ForVotes)
		assert.Equal(t, "10", totals.AgainstVotes)
		assert.Equal(t, int64(2), totals.ForVoters)
		assert.Equal(t, int64(1), totals.AgainstVoters)
	})
}

func testOverwriteVoteAggregate(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateProposal(ctx, buildTestProposal(40)))

	t.Run("creates the tally when absent", func(t *testing.T) {
		require.NoError(t, store.OverwriteVoteAggregate(ctx, &schema.VoteAggregate{
			ProposalID:   40,
			ForVotes:     "500",
			AgainstVotes: "200",
			TotalVoters:  3,
			ForVoters:    2,
			AgainstVoters: 1,
		}))

		aggregate, err := store.GetVoteAggregate(ctx, 40)
		require.NoError(t, err)
		require.NotNil(t, aggregate)
		assert.Equal(t, "500", aggregate.ForVotes)
		assert.Equal(t, "200", aggregate.AgainstVotes)
	})

	t.Run("replaces the tally and bumps the version", func(t *testing.T) {
		before, err := store.GetVoteAggregate(ctx, 40)
		require.NoError(t, err)

		require.NoError(t, store.OverwriteVoteAggregate(ctx, &schema.VoteAggregate{
			ProposalID:    40,
			ForVotes:      "100",
			AgainstVotes:  "0",
			TotalVoters:   1,
			ForVoters:     1,
			AgainstVoters: 0,
		}))

		after, err := store.GetVoteAggregate(ctx, 40)
		require.NoError(t, err)
		assert.Equal(t, "100", after.ForVotes)
		assert.Equal(t, "0", after.AgainstVotes)
		assert.Equal(t, int64(1), after.TotalVoters)
		assert.Greater(t, after.Version, before.Version)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"LedgerEntryLifecycle", testLedgerEntryLifecycle},
		{"ListLedgerEntries", testListLedgerEntries},
		{"ListLedgerUserIDs", testListLedgerUserIDs},
		{"EnsureBalance", testEnsureBalance},
		{"AddPoints", testAddPoints},
		{"ConvertSubToMain", testConvertSubToMain},
		{"ExchangeMainForTokens", testExchangeMainForTokens},
		{"OverwriteBalance", testOverwriteBalance},
		{"SumConfirmedEntries", testSumConfirmedEntries},
		{"Proposals", testProposals},
		{"ProposalTerminalFlags", testProposalTerminalFlags},
		{"CastVote", testCastVote},
		{"SumVotes", testSumVotes},
		{"OverwriteVoteAggregate", testOverwriteVoteAggregate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
