package redisbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/redis/go-redis/v9"
)

type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

type subscription interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

// Publisher sends JSON payloads over redis pub/sub. The topic is used as the
// channel name and the key is carried inside the payload only.
type Publisher struct {
	client publishClient
}

func newClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewPublisher(cfg config.RedisConfig) *Publisher {
	return &Publisher{client: newClient(cfg)}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	receivers, err := p.client.Publish(ctx, topic, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}

	logger.FromContext(ctx).WithField("channel", topic).
		WithField("key", key).
		WithField("receivers", receivers).
		Debug("published to redis")
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}

type Subscriber struct {
	client    *redis.Client
	subscribe func(ctx context.Context, channel string) (subscription, error)
	channel   string
}

func NewSubscriber(cfg config.RedisConfig, channel string) *Subscriber {
	client := newClient(cfg)
	return &Subscriber{
		client:  client,
		channel: channel,
		subscribe: func(ctx context.Context, channel string) (subscription, error) {
			ps := client.Subscribe(ctx, channel)
			if _, err := ps.Receive(ctx); err != nil {
				_ = ps.Close()
				return nil, fmt.Errorf("subscribe %s: %w", channel, err)
			}
			return ps, nil
		},
	}
}

// Consume blocks until ctx is done or handler fails.
func (s *Subscriber) Consume(ctx context.Context, handler func(context.Context, []byte) error) error {
	sub, err := s.subscribe(ctx, s.channel)
	if err != nil {
		return err
	}
	defer sub.Close()

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("redis subscription to %s closed", s.channel)
			}
			if err := handler(ctx, []byte(msg.Payload)); err != nil {
				return err
			}
		}
	}
}

func (s *Subscriber) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
