package rabbitmq

import (
	"context"
	"log/slog"
	"sync"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errNotConfirmed = errs.New("broker did not confirm the message")

// Publisher sends outbox events to durable queues named after their topic.
// The connection is opened lazily and dropped on any failure; the outbox
// relay retries the event later.
type Publisher struct {
	url   string
	clock clock.Clock

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

var _ shared.EventPublisher = (*Publisher)(nil)

func NewPublisher(cfg config.AMQPConfig, clk clock.Clock) *Publisher {
	return &Publisher{
		url:      cfg.URL,
		clock:    clk,
		declared: make(map[string]bool),
	}
}

func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channelLocked()
	if err != nil {
		return err
	}

	if !p.declared[topic] {
		if _, err := ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
			p.resetLocked()
			return errs.Wrap(err, "declare queue "+topic)
		}
		p.declared[topic] = true
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now().UTC(),
		Body:         payload,
	})
	if err != nil {
		p.resetLocked()
		return errs.Wrap(err, "publish to "+topic)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrap(err, "wait for publish confirm")
	}
	if !acked {
		return errs.Wrap(errNotConfirmed, topic)
	}
	return nil
}

// Close is safe to call when nothing was ever published.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.conn != nil && !p.conn.IsClosed() {
		err = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
	p.declared = make(map[string]bool)
	return err
}

func (p *Publisher) channelLocked() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.resetLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "enable publisher confirms")
	}

	p.conn, p.ch = conn, ch
	slog.Info("Connected to message broker")
	return ch, nil
}

func (p *Publisher) resetLocked() {
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			slog.Warn("closing broker connection failed", "error", err.Error())
		}
	}
	p.conn, p.ch = nil, nil
	p.declared = make(map[string]bool)
}
