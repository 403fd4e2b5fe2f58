// Package rabbitmq publishes JSON events to a fanout exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrClosed = errors.New("rabbitmq: publisher closed")

// channel and connection are the parts of amqp091 the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type connection interface {
	Channel() (channel, error)
	IsClosed() bool
	Close() error
}

type amqpConn struct{ *amqp.Connection }

func (c amqpConn) Channel() (channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func dialAMQP(url string) (connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(5 * time.Second)})
	if err != nil {
		return nil, err
	}
	return amqpConn{conn}, nil
}

type Publisher struct {
	url      string
	exchange string
	log      *slog.Logger
	dial     func(url string) (connection, error)

	mu     sync.Mutex
	conn   connection
	ch     channel
	closed bool
}

// New dials url and declares exchange as a durable fanout.
func New(url, exchange string, log *slog.Logger) (*Publisher, error) {
	p := &Publisher{url: url, exchange: exchange, log: log, dial: dialAMQP}
	if err := p.reconnect(); err != nil {
		return nil, err
	}
	return p, nil
}

// reconnect reopens the channel on a live connection, or closes the dead
// connection and dials a new one.
func (p *Publisher) reconnect() error {
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.openChannel(p.conn); err == nil {
			return nil
		}
		p.conn.Close()
	}
	p.conn, p.ch = nil, nil

	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	if err := p.openChannel(conn); err != nil {
		conn.Close()
		return err
	}
	p.conn = conn
	return nil
}

func (p *Publisher) openChannel(conn connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		ch.Close()
		return fmt.Errorf("rabbitmq declare %s: %w", p.exchange, err)
	}
	p.ch = ch
	return nil
}

// Message builds the persistent JSON publishing for v.
func Message(v any, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}, nil
}

// PublishJSON sends v with routingKey. A dropped channel or connection is
// reopened once before giving up.
func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	msg, err := Message(v, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		p.log.Warn("rabbitmq connection lost, reconnecting", "exchange", p.exchange)
		if err := p.reconnect(); err != nil {
			return err
		}
	}
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.ch != nil && !p.ch.IsClosed() {
		if err := p.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}
