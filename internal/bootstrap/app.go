package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/airledger/config"
	"github.com/Domenick1991/airledger/internal/console"
	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/events"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/service/airline"
)

// Run builds the ledger from cfg and serves the menu on in/out until the user
// exits, input ends or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	producer, err := events.NewProducer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create events producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("failed to close events producer")
		}
	}()

	manager := NewManager(cfg, producer)
	menu := console.NewMenu(manager, in, out, console.WithPrompt(cfg.Console.Prompt))

	logger.FromContext(ctx).WithField("events_driver", cfg.Events.Driver).Info("airline ledger started")
	return menu.Run(ctx)
}

// NewManager returns an empty in-memory ledger priced and publishing per cfg.
func NewManager(cfg *config.Config, producer airline.Producer) *airline.Manager {
	return airline.NewInMemoryManager(
		airline.WithTariff(Tariff(cfg.Pricing)),
		airline.WithProducer(producer, cfg.Events.Topic),
	)
}

func Tariff(p config.PricingConfig) domain.Tariff {
	return domain.Tariff{
		TicketPrice:               p.TicketPrice,
		DomesticBaggagePerKg:      p.DomesticBaggagePerKg,
		InternationalBaggagePerKg: p.InternationalBaggagePerKg,
	}
}
