package governance_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/governance"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/mocks"
	"github.com/quorumpoint/qp-ledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testProposalMocks contains all the mocks needed for testing the proposal service
type testProposalMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	governor  *mocks.MockGovernorClient
	seq       *mocks.MockSynchronizer
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	service   governance.ProposalService
}

// setupTestProposalService creates all the mocks and service for testing
func setupTestProposalService(t *testing.T) *testProposalMocks {
	ctrl := gomock.NewController(t)

	tm := &testProposalMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		governor:  mocks.NewMockGovernorClient(ctrl),
		seq:       mocks.NewMockSynchronizer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.service = governance.NewProposalService(tm.store, tm.governor, tm.seq, tm.publisher, tm.clock)
	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	return tm
}

func TestProposalService_Create_RejectsInvalidInput(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	future := time.Now().Add(24 * time.Hour)

	_, err := tm.service.Create(ctx, "", "description", future)
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)

	_, err = tm.service.Create(ctx, "proposer-1", "", future)
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)

	_, err = tm.service.Create(ctx, "proposer-1", "description", time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidIntent)
}

func TestProposalService_Create_ReserveSubmitConfirm(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	deadline := time.Now().Add(48 * time.Hour)

	gomock.InOrder(
		tm.seq.EXPECT().ReserveNext().Return(int64(42)),
		tm.governor.EXPECT().SubmitProposal(ctx, int64(42), "Fund the treasury", deadline).Return("0xabc", nil),
		tm.store.EXPECT().CreateProposal(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, row *schema.Proposal) error {
				assert.Equal(t, int64(42), row.ID)
				assert.Equal(t, "proposer-1", row.ProposerID)
				assert.Equal(t, "0xabc", row.TxHash)
				return nil
			}),
		tm.seq.EXPECT().Confirm(int64(42)),
	)
	tm.publisher.EXPECT().PublishLedgerEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, domain.EventProposalCreated, event.Type)
			require.NotNil(t, event.ProposalID)
			assert.Equal(t, int64(42), *event.ProposalID)
			return nil
		})

	proposal, err := tm.service.Create(ctx, "proposer-1", "Fund the treasury", deadline)
	require.NoError(t, err)
	require.NotNil(t, proposal)
	assert.Equal(t, int64(42), proposal.ID)
	assert.Equal(t, "0xabc", proposal.TxHash)
}

func TestProposalService_Create_SubmissionFailureAbandonsReservation(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	deadline := time.Now().Add(48 * time.Hour)

	tm.seq.EXPECT().ReserveNext().Return(int64(42))
	tm.governor.EXPECT().SubmitProposal(ctx, int64(42), "description", deadline).
		Return("", errors.New("nonce too low"))

	// No CreateProposal, no Confirm: the identifier stays reserved-but-unused
	proposal, err := tm.service.Create(ctx, "proposer-1", "description", deadline)
	assert.ErrorIs(t, err, domain.ErrExternalSubmission)
	assert.Nil(t, proposal)
}

func TestProposalService_Create_StoreFailureDoesNotConfirm(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	deadline := time.Now().Add(48 * time.Hour)

	tm.seq.EXPECT().ReserveNext().Return(int64(42))
	tm.governor.EXPECT().SubmitProposal(ctx, int64(42), "description", deadline).Return("0xabc", nil)
	tm.store.EXPECT().CreateProposal(ctx, gomock.Any()).Return(errors.New("constraint violation"))

	proposal, err := tm.service.Create(ctx, "proposer-1", "description", deadline)
	assert.Error(t, err)
	assert.Nil(t, proposal)
}

func TestProposalService_Get(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		tm.store.EXPECT().GetProposal(ctx, int64(1)).Return(&schema.Proposal{
			ID:          1,
			Description: "description",
			ProposerID:  "proposer-1",
			Deadline:    time.Now().Add(time.Hour),
		}, nil)

		proposal, err := tm.service.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), proposal.ID)
	})

	t.Run("not found", func(t *testing.T) {
		tm.store.EXPECT().GetProposal(ctx, int64(2)).Return(nil, nil)

		_, err := tm.service.Get(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	})
}

func TestProposalService_MarkExecuted(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	row := &schema.Proposal{ID: 1, Description: "description", ProposerID: "proposer-1"}

	t.Run("marks once", func(t *testing.T) {
		tm.store.EXPECT().GetProposal(ctx, int64(1)).Return(row, nil)
		tm.store.EXPECT().MarkProposalExecuted(ctx, int64(1)).Return(true, nil)

		require.NoError(t, tm.service.MarkExecuted(ctx, 1))
	})

	t.Run("already terminal", func(t *testing.T) {
		tm.store.EXPECT().GetProposal(ctx, int64(1)).Return(row, nil)
		tm.store.EXPECT().MarkProposalExecuted(ctx, int64(1)).Return(false, nil)

		err := tm.service.MarkExecuted(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrVotingClosed)
	})

	t.Run("not found", func(t *testing.T) {
		tm.store.EXPECT().GetProposal(ctx, int64(9)).Return(nil, nil)

		err := tm.service.MarkExecuted(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	})
}

func TestProposalService_MarkCanceled(t *testing.T) {
	tm := setupTestProposalService(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	row := &schema.Proposal{ID: 3, Description: "description", ProposerID: "proposer-1"}

	tm.store.EXPECT().GetProposal(ctx, int64(3)).Return(row, nil)
	tm.store.EXPECT().MarkProposalCanceled(ctx, int64(3)).Return(true, nil)

	require.NoError(t, tm.service.MarkCanceled(ctx, 3))
}
