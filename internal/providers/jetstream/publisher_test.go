package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumpoint/qp-ledger/internal/adapter"
	"github.com/quorumpoint/qp-ledger/internal/domain"
	"github.com/quorumpoint/qp-ledger/internal/logger"
	"github.com/quorumpoint/qp-ledger/internal/mocks"
	"github.com/quorumpoint/qp-ledger/internal/providers/jetstream"
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

// testPublisherMocks contains all the mocks needed for testing the publisher
type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	nc     *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

// setupTestPublisher connects a publisher against mocked NATS primitives
func setupTestPublisher(t *testing.T) (*testPublisherMocks, adapter.JSON) {
	ctrl := gomock.NewController(t)

	tm := &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}

	return tm, tm.json
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "LEDGER_EVENTS",
		MaxReconnects:  10,
		ReconnectWait:  2 * time.Second,
		ConnectionName: "qp-ledger-test",
	}
}

func TestNewPublisher_ConnectFailure(t *testing.T) {
	tm, jsonAdapter := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := jetstream.NewPublisher(testConfig(), tm.natsJS, jsonAdapter)
	assert.Error(t, err)
}

func TestPublisher_PublishLedgerEvent_Subjects(t *testing.T) {
	tests := []struct {
		name            string
		eventType       domain.LedgerEventType
		expectedSubject string
	}{
		{"entry confirmed goes to ledger", domain.EventEntryConfirmed, "ledger.entry_confirmed"},
		{"proposal created goes to governance", domain.EventProposalCreated, "governance.proposal_created"},
		{"vote cast goes to governance", domain.EventVoteCast, "governance.vote_cast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, jsonAdapter := setupTestPublisher(t)
			defer tm.ctrl.Finish()

			tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).
				Return(tm.nc, tm.js, nil)

			publisher, err := jetstream.NewPublisher(testConfig(), tm.natsJS, jsonAdapter)
			require.NoError(t, err)

			ctx := context.Background()
			event := &domain.LedgerEvent{
				Type:      tt.eventType,
				UserID:    "user-1",
				Timestamp: time.Now().UTC(),
			}

			tm.json.EXPECT().Marshal(event).DoAndReturn(func(v interface{}) ([]byte, error) {
				return json.Marshal(v)
			})
			tm.js.EXPECT().Publish(ctx, tt.expectedSubject, gomock.Any()).
				Return(&natsjetstream.PubAck{}, nil)

			require.NoError(t, publisher.PublishLedgerEvent(ctx, event))
		})
	}
}

func TestPublisher_PublishLedgerEvent_MarshalFailure(t *testing.T) {
	tm, jsonAdapter := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.nc, tm.js, nil)

	publisher, err := jetstream.NewPublisher(testConfig(), tm.natsJS, jsonAdapter)
	require.NoError(t, err)

	tm.json.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("marshal failed"))

	err = publisher.PublishLedgerEvent(context.Background(), &domain.LedgerEvent{
		Type: domain.EventEntryConfirmed,
	})
	assert.Error(t, err)
}

func TestPublisher_PublishLedgerEvent_PublishFailure(t *testing.T) {
	tm, jsonAdapter := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.nc, tm.js, nil)

	publisher, err := jetstream.NewPublisher(testConfig(), tm.natsJS, jsonAdapter)
	require.NoError(t, err)

	tm.json.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
	tm.js.EXPECT().Publish(gomock.Any(), "ledger.entry_confirmed", gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err = publisher.PublishLedgerEvent(context.Background(), &domain.LedgerEvent{
		Type: domain.EventEntryConfirmed,
	})
	assert.Error(t, err)
}

func TestPublisher_Close(t *testing.T) {
	tm, jsonAdapter := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.nc, tm.js, nil)

	publisher, err := jetstream.NewPublisher(testConfig(), tm.natsJS, jsonAdapter)
	require.NoError(t, err)

	tm.nc.EXPECT().Close()
	publisher.Close()
}
