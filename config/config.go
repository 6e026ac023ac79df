package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EventsDriverNone  = "none"
	EventsDriverKafka = "kafka"
	EventsDriverRedis = "redis"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Pricing PricingConfig `yaml:"pricing"`
	Events  EventsConfig  `yaml:"events"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Redis   RedisConfig   `yaml:"redis"`
	Console ConsoleConfig `yaml:"console"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PricingConfig struct {
	TicketPrice               int64   `yaml:"ticket_price"`
	DomesticBaggagePerKg      float64 `yaml:"domestic_baggage_per_kg"`
	InternationalBaggagePerKg float64 `yaml:"international_baggage_per_kg"`
}

type EventsConfig struct {
	Driver string `yaml:"driver"`
	Topic  string `yaml:"topic"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	GroupID string   `yaml:"group_id"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConsoleConfig struct {
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Pricing: PricingConfig{
			TicketPrice:               200,
			DomesticBaggagePerKg:      50000,
			InternationalBaggagePerKg: 10,
		},
		Events: EventsConfig{
			Driver: EventsDriverNone,
			Topic:  "airline.ledger.events",
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			GroupID: "airline-notifier",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Console: ConsoleConfig{
			Prompt: "Choose an option: ",
		},
	}
}

// PathEnv names the environment variable holding the config file path.
const PathEnv = "CONFIG_PATH"

// LoadFromEnv loads the file named by CONFIG_PATH, or returns Default when the
// variable is unset or empty.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

// LoadConfig reads a YAML file on top of Default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Pricing.TicketPrice < 0 {
		return errors.New("pricing.ticket_price must not be negative")
	}

	c.Events.Driver = strings.ToLower(strings.TrimSpace(c.Events.Driver))
	switch c.Events.Driver {
	case "":
		c.Events.Driver = EventsDriverNone
	case EventsDriverNone:
	case EventsDriverKafka:
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("kafka.brokers is required for the kafka events driver")
		}
		if c.Events.Topic == "" {
			return errors.New("events.topic is required")
		}
	case EventsDriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis events driver")
		}
		if c.Events.Topic == "" {
			return errors.New("events.topic is required")
		}
	default:
		return fmt.Errorf("unknown events driver %q", c.Events.Driver)
	}

	return nil
}
