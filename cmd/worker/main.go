package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/events"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/notify"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log, os.Stderr); err != nil {
		logrus.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	subscriber, err := events.NewSubscriber(cfg)
	if err != nil {
		logrus.Fatalf("create subscriber: %v", err)
	}
	defer subscriber.Close()

	sender := notify.NewSender(os.Stdout)

	logrus.WithField("driver", cfg.Events.Driver).WithField("topic", cfg.Events.Topic).Info("notifier started")
	err = subscriber.Consume(ctx, func(ctx context.Context, event domain.Event) error {
		logrus.WithFields(logrus.Fields{
			"event_id":       event.ID,
			"type":           event.Type,
			"correlation_id": event.CorrelationID,
		}).Debug("event received")
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.Errorf("consumer stopped: %v", err)
		return
	}
	logrus.Info("notifier stopped")
}
