package shared

import "context"

// EventPublisher hands an encoded event to the message broker. topic is the
// queue the event is routed to.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
