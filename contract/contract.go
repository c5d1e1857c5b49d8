//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"mytwitter/domain/event"
)

// EventSink receives every domain event once the mutation behind it applied.
// Sinks must not call back into the service that published the event.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
