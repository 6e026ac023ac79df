package logger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/airledger/config"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	correlationIDKey
)

// Init configures the standard logrus logger.
func Init(cfg config.LogConfig, out io.Writer) error {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var formatter logrus.Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	std := logrus.StandardLogger()
	std.SetLevel(level)
	std.SetFormatter(formatter)
	if out != nil {
		std.SetOutput(out)
	}
	return nil
}

func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, entry)
}

func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// NewCorrelationID returns a short id for one console command.
func NewCorrelationID() string {
	return "cmd_" + shortuuid.New()
}

// WithCorrelationID stores the id and a logger tagged with it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey, id)
	return ToContext(ctx, FromContext(ctx).WithField("correlation_id", id))
}

func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
