package services

import (
	"context"
	"errors"
	"time"
)

// OrderPlaced is announced once an order is committed.
type OrderPlaced struct {
	OrderID       uint      `json:"orderId"`
	UserID        uint      `json:"userId"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Lines         int       `json:"lines"`
	PlacedAt      time.Time `json:"placedAt"`
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error
}

// Publishers fans an event out to every publisher and joins the failures.
type Publishers []OrderPublisher

func (ps Publishers) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error {
	var errs []error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.PublishOrderPlaced(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Broker takes JSON payloads by routing key. rabbitmq.Publisher is one.
type Broker interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// BrokerPublisher forwards order events to a message broker.
type BrokerPublisher struct{ Broker Broker }

func (b BrokerPublisher) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error {
	return b.Broker.PublishJSON(ctx, "order.placed", ev)
}
