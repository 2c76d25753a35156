// Package amqp forwards record changes to a RabbitMQ topic exchange so
// out-of-process consumers (notifications, exports) can react to writes.
package amqp

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"carteira/internal/events"
	"carteira/internal/logger"
)

const (
	publishTimeout     = 5 * time.Second
	maxPublishAttempts = 3
	maxBackoff         = 30 * time.Second
)

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type dialFunc func(url string) (io.Closer, channel, error)

func dialBroker(url string) (io.Closer, channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial AMQP: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}
	return conn, ch, nil
}

// Publisher publishes ChangeMessages, reconnecting when the broker drops
// the connection.
type Publisher struct {
	mu       sync.Mutex
	url      string
	exchange string
	conn     io.Closer
	ch       channel
	dial     dialFunc
	sleep    func(time.Duration)
}

// NewPublisher connects to url and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	return newPublisher(url, exchange, dialBroker)
}

func newPublisher(url, exchange string, dial dialFunc) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange, dial: dial, sleep: time.Sleep}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, ch, err := p.dial(p.url)
	if err != nil {
		return err
	}
	err = ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

// Publish sends msg, retrying with exponential backoff. Connection errors
// trigger a reconnect before the next attempt.
func (p *Publisher) Publish(ctx context.Context, msg *ChangeMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < maxPublishAttempts; attempt++ {
		if attempt > 0 {
			p.sleep(exponentialBackoff(attempt - 1))
		}
		if p.ch == nil {
			if lastErr = p.connect(); lastErr != nil {
				continue
			}
		}

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		lastErr = p.ch.PublishWithContext(pubCtx,
			p.exchange,       // exchange
			msg.RoutingKey(), // routing key
			false,            // mandatory
			false,            // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		cancel()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isConnectionError(lastErr) {
			p.closeLocked()
		}
		logger.Named("amqp").Warnw("publish attempt failed",
			"attempt", attempt+1,
			"routing_key", msg.RoutingKey(),
			"error", lastErr,
		)
	}
	return fmt.Errorf("publish message: %w", lastErr)
}

// Forward adapts the publisher into a bus handler.
func (p *Publisher) Forward(ctx context.Context, c events.Change) error {
	return p.Publish(ctx, NewChangeMessage(c))
}

// Close closes the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Publisher) closeLocked() error {
	var err error
	if p.ch != nil {
		p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}

// exponentialBackoff returns 1s, 2s, 4s... capped at maxBackoff.
func exponentialBackoff(attempt int) time.Duration {
	if attempt >= 5 {
		return maxBackoff
	}
	d := time.Second << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if err == amqp091.ErrClosed {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"connection", "eof", "broken pipe", "channel/connection is not open"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
