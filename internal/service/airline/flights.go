package airline

import (
	"context"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/logger"
)

// AddFlight registers flight as is. Flight numbers are not checked for
// uniqueness, so a later flight with the same number is never found by number.
func (m *Manager) AddFlight(ctx context.Context, flight *domain.Flight) {
	if flight == nil {
		return
	}
	m.flights.Add(flight)

	logger.FromContext(ctx).
		WithField("flight_number", flight.Number).
		WithField("kind", flight.Kind.String()).
		Info("flight added")
	m.publish(ctx, domain.Event{
		Type:          domain.EventFlightAdded,
		FlightNumber:  flight.Number,
		DepartureTime: flight.DepartureTime,
	})
}

// UpdateFlightTime changes the departure time of the first flight with the
// given number. An unknown number changes nothing and yields ErrFlightNotFound.
func (m *Manager) UpdateFlightTime(ctx context.Context, flightNumber, newTime string) error {
	flight, err := m.flights.GetByNumber(flightNumber)
	if err != nil {
		logger.FromContext(ctx).WithField("flight_number", flightNumber).Info("no flight to reschedule")
		return err
	}
	flight.DepartureTime = newTime

	logger.FromContext(ctx).
		WithField("flight_number", flightNumber).
		WithField("departure_time", newTime).
		Info("flight rescheduled")
	m.publish(ctx, domain.Event{
		Type:          domain.EventFlightRescheduled,
		FlightNumber:  flight.Number,
		DepartureTime: newTime,
	})
	return nil
}

func (m *Manager) ListAvailableFlights(origin, destination string) []*domain.Flight {
	var available []*domain.Flight
	for _, f := range m.flights.List() {
		if f.Origin == origin && f.Destination == destination && !f.IsFull() {
			available = append(available, f)
		}
	}
	return available
}

func (m *Manager) CountFlightsByType() domain.FlightCounts {
	var counts domain.FlightCounts
	for _, f := range m.flights.List() {
		switch f.Kind {
		case domain.FlightKindDomestic:
			counts.Domestic++
		case domain.FlightKindInternational:
			counts.International++
		}
	}
	return counts
}

func (m *Manager) QuoteBaggageFee(flightNumber string, weight float64) (float64, error) {
	flight, err := m.flights.GetByNumber(flightNumber)
	if err != nil {
		return 0, err
	}
	return m.tariff.BaggageFee(flight.Kind, weight), nil
}
