package airline

import (
	"context"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/logger"
)

func (m *Manager) AddPassenger(ctx context.Context, name, passport string) *domain.Passenger {
	p := &domain.Passenger{
		ID:             m.passengerIDCounter,
		Name:           name,
		PassportNumber: passport,
	}
	m.passengerIDCounter++
	m.passengers.Add(p)

	logger.FromContext(ctx).WithField("passenger_id", p.ID).Info("passenger added")
	m.publish(ctx, domain.Event{
		Type:          domain.EventPassengerAdded,
		PassengerID:   p.ID,
		PassengerName: p.Name,
	})
	return p
}
