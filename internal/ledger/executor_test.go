package ledger_test

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
	"github.com/quorumpoint/qp-ledger/internal/ledger"
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

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	executor  ledger.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	executor, err := ledger.NewExecutor(ledger.Config{
		SubToMainRatio:   10,
		MainToTokenRatio: 10,
	}, tm.store, tm.publisher, tm.clock)
	require.NoError(t, err)
	tm.executor = executor

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	return tm
}

func TestNewExecutor_RejectsRatiosOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := ledger.NewExecutor(ledger.Config{
		SubToMainRatio:   0,
		MainToTokenRatio: 10,
	}, mocks.NewMockStore(ctrl), mocks.NewMockPublisher(ctrl), mocks.NewMockClock(ctrl))
	assert.ErrorIs(t, err, domain.ErrRatioOutOfRange)

	_, err = ledger.NewExecutor(ledger.Config{
		SubToMainRatio:   10,
		MainToTokenRatio: 101,
	}, mocks.NewMockStore(ctrl), mocks.NewMockPublisher(ctrl), mocks.NewMockClock(ctrl))
	assert.ErrorIs(t, err, domain.ErrRatioOutOfRange)
}

func TestExecutor_Execute_RejectsInvalidIntents(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name   string
		intent domain.PointIntent
	}{
		{"missing user id", domain.PointIntent{Kind: domain.KindMainEarn, Amount: 10, Source: domain.SourceTask}},
		{"zero amount", domain.PointIntent{Kind: domain.KindMainEarn, UserID: "user-1", Amount: 0, Source: domain.SourceTask}},
		{"negative amount", domain.PointIntent{Kind: domain.KindSubEarn, UserID: "user-1", Amount: -5, Source: domain.SourceTask}},
		{"unknown source", domain.PointIntent{Kind: domain.KindMainEarn, UserID: "user-1", Amount: 10, Source: "lottery"}},
		{"unknown kind", domain.PointIntent{Kind: "mystery", UserID: "user-1", Amount: 10}},
		{"vote cast bypasses executor", domain.PointIntent{Kind: domain.KindVoteCast, UserID: "user-1", Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := tm.executor.Execute(ctx, tt.intent)
			assert.ErrorIs(t, err, domain.ErrInvalidIntent)
			assert.Nil(t, entry)
		})
	}
}

func TestExecutor_Execute_MainEarn(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *schema.LedgerEntry) error {
			assert.Equal(t, string(domain.KindMainEarn), entry.Kind)
			assert.Equal(t, string(domain.StatusPending), entry.Status)
			require.NotNil(t, entry.MainEarnAmount)
			assert.Equal(t, int64(100), *entry.MainEarnAmount)
			return nil
		})
	tm.store.EXPECT().AddMainPoints(ctx, "user-1", int64(100)).Return(nil)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusConfirmed, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishLedgerEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, domain.EventEntryConfirmed, event.Type)
			assert.Equal(t, "user-1", event.UserID)
			return nil
		})

	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindMainEarn,
		UserID: "user-1",
		Amount: 100,
		Source: domain.SourceTask,
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, domain.StatusConfirmed, entry.Status)
	assert.NotEmpty(t, entry.ID)
}

func TestExecutor_Execute_ConversionCapturesRatio(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	// Requesting 95 sub points at ratio 10 buys 9 main points for 90 sub
	// points; only the whole multiple is deducted and the 5-point remainder
	// never leaves the balance
	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *schema.LedgerEntry) error {
			require.NotNil(t, entry.SubConvertedAmount)
			require.NotNil(t, entry.MainReceived)
			require.NotNil(t, entry.RatioApplied)
			assert.Equal(t, int64(90), *entry.SubConvertedAmount)
			assert.Equal(t, int64(9), *entry.MainReceived)
			assert.Equal(t, 10, *entry.RatioApplied)
			return nil
		})
	tm.store.EXPECT().ConvertSubToMain(ctx, "user-1", int64(90), int64(9)).Return(true, nil)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusConfirmed, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishLedgerEvent(ctx, gomock.Any()).Return(nil)

	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindSubToMainConversion,
		UserID: "user-1",
		Amount: 95,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, entry.Status)
	require.NotNil(t, entry.SubConvertedAmount)
	assert.Equal(t, int64(90), *entry.SubConvertedAmount)
}

func TestExecutor_Execute_ZeroResultRejectedBeforeWrite(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	// 5 sub points at ratio 10 truncate to zero main points; nothing is written
	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindSubToMainConversion,
		UserID: "user-1",
		Amount: 5,
	})
	assert.ErrorIs(t, err, domain.ErrZeroResult)
	assert.Nil(t, entry)

	entry, err = tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindMainToTokenExchange,
		UserID: "user-1",
		Amount: 9,
	})
	assert.ErrorIs(t, err, domain.ErrZeroResult)
	assert.Nil(t, entry)
}

func TestExecutor_Execute_InsufficientBalanceFailsEntry(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().ConvertSubToMain(ctx, "user-1", int64(100), int64(10)).Return(false, nil)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusFailed, gomock.Any()).Return(nil)

	// An insufficient balance is a failed entry, not an error; no event is
	// published for a failed entry
	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindSubToMainConversion,
		UserID: "user-1",
		Amount: 100,
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, domain.StatusFailed, entry.Status)
	assert.Equal(t, domain.ErrInsufficientBalance.Error(), entry.FailureReason)
}

func TestExecutor_Execute_MutationErrorFailsEntry(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().AddMainPoints(ctx, "user-1", int64(10)).Return(dbErr)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusFailed, gomock.Any()).Return(nil)

	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindMainEarn,
		UserID: "user-1",
		Amount: 10,
		Source: domain.SourceTask,
	})
	assert.ErrorIs(t, err, dbErr)
	require.NotNil(t, entry)
	assert.Equal(t, domain.StatusFailed, entry.Status)
}

func TestExecutor_Execute_ExchangeUsesCurrentRatio(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	require.NoError(t, tm.executor.SetRatios(10, 20))

	// 45 main points at ratio 20 buy 2 tokens for 40 main points; the
	// remainder stays in main points
	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().ExchangeMainForTokens(ctx, "user-1", int64(40), int64(2)).Return(true, nil)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusConfirmed, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishLedgerEvent(ctx, gomock.Any()).Return(nil)

	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindMainToTokenExchange,
		UserID: "user-1",
		Amount: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, entry.Status)
	require.NotNil(t, entry.MainExchangedAmount)
	assert.Equal(t, int64(40), *entry.MainExchangedAmount)
	require.NotNil(t, entry.TokensReceived)
	assert.Equal(t, int64(2), *entry.TokensReceived)
}

func TestExecutor_SetRatios(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	subToMain, mainToToken := tm.executor.Ratios()
	assert.Equal(t, 10, subToMain)
	assert.Equal(t, 10, mainToToken)

	require.NoError(t, tm.executor.SetRatios(5, 50))
	subToMain, mainToToken = tm.executor.Ratios()
	assert.Equal(t, 5, subToMain)
	assert.Equal(t, 50, mainToToken)

	// Out-of-range updates are rejected and leave the ratios untouched
	assert.ErrorIs(t, tm.executor.SetRatios(0, 50), domain.ErrRatioOutOfRange)
	assert.ErrorIs(t, tm.executor.SetRatios(5, 200), domain.ErrRatioOutOfRange)
	subToMain, mainToToken = tm.executor.Ratios()
	assert.Equal(t, 5, subToMain)
	assert.Equal(t, 50, mainToToken)
}

func TestExecutor_Execute_PublishFailureDoesNotFailIntent(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.store.EXPECT().EnsureBalance(ctx, "user-1").Return(nil)
	tm.store.EXPECT().CreateLedgerEntry(ctx, gomock.Any()).Return(nil)
	tm.store.EXPECT().AddSubPoints(ctx, "user-1", int64(30)).Return(nil)
	tm.store.EXPECT().FinalizeLedgerEntry(ctx, gomock.Any(), domain.StatusConfirmed, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishLedgerEvent(ctx, gomock.Any()).Return(errors.New("nats down"))

	entry, err := tm.executor.Execute(ctx, domain.PointIntent{
		Kind:   domain.KindSubEarn,
		UserID: "user-1",
		Amount: 30,
		Source: domain.SourceCheckIn,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, entry.Status)
}
