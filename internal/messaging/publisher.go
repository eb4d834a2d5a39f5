package messaging

import (
	"context"

	"github.com/quorumpoint/qp-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the
// message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishLedgerEvent publishes a ledger event to the message broker
	PublishLedgerEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}

// NoopPublisher drops all events; used when NATS is not configured
type NoopPublisher struct{}

// PublishLedgerEvent drops the event
func (NoopPublisher) PublishLedgerEvent(ctx context.Context, event *domain.LedgerEvent) error {
	return nil
}

// Close is a no-op
func (NoopPublisher) Close() {}
