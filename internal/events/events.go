package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/kafka"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/redisbus"
)

const connectTimeout = 5 * time.Second

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
	Close() error
}

type NopProducer struct{}

func (NopProducer) Publish(context.Context, string, string, interface{}) error { return nil }
func (NopProducer) Close() error { return nil }

// NewProducer returns the producer selected by cfg.Events.Driver.
func NewProducer(ctx context.Context, cfg *config.Config) (Producer, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		checkCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := p.CheckConnection(checkCtx); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("kafka is not reachable at startup")
		}
		return p, nil
	case config.EventsDriverRedis:
		return redisbus.NewPublisher(cfg.Redis), nil
	case config.EventsDriverNone, "":
		return NopProducer{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

type rawConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, []byte) error) error
	Close() error
}

// Subscriber decodes ledger events from the configured transport.
type Subscriber struct {
	consumer rawConsumer
}

func NewSubscriber(cfg *config.Config) (*Subscriber, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		return &Subscriber{consumer: kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Events.Topic)}, nil
	case config.EventsDriverRedis:
		return &Subscriber{consumer: redisbus.NewSubscriber(cfg.Redis, cfg.Events.Topic)}, nil
	default:
		return nil, fmt.Errorf("events driver %q cannot be consumed", cfg.Events.Driver)
	}
}

// Consume skips payloads that do not decode and stops on the first handler error.
func (s *Subscriber) Consume(ctx context.Context, handler func(context.Context, domain.Event) error) error {
	return s.consumer.Consume(ctx, func(ctx context.Context, value []byte) error {
		var event domain.Event
		if err := json.Unmarshal(value, &event); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("skipping undecodable event")
			return nil
		}
		return handler(ctx, event)
	})
}

func (s *Subscriber) Close() error {
	return s.consumer.Close()
}
