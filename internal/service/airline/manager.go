package airline

import (
	"context"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/repository"
	"github.com/google/uuid"
)

// AirlineUseCase is everything the console can ask of the ledger.
type AirlineUseCase interface {
	AddPassenger(ctx context.Context, name, passport string) *domain.Passenger
	AddFlight(ctx context.Context, flight *domain.Flight)
	CreateBooking(ctx context.Context, passengerID int64, flightNumber string, tickets int) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	UpdateFlightTime(ctx context.Context, flightNumber, newTime string) error

	ListAvailableFlights(origin, destination string) []*domain.Flight
	ListBookingsByPassenger(passengerID int64) []*domain.Booking
	TotalRevenue() int64
	CountFlightsByType() domain.FlightCounts
	FlightPassengerList(flightNumber string) []string
	QuoteBaggageFee(flightNumber string, weight float64) (float64, error)

	Passengers() []*domain.Passenger
	Flights() []*domain.Flight
	Bookings() []*domain.Booking
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Manager owns the three registries and hands out ids. It is not safe for
// concurrent use.
type Manager struct {
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
	bookings   repository.BookingRepository
	producer   Producer
	topic      string
	tariff     domain.Tariff
	now        func() time.Time
	newToken   func() string

	passengerIDCounter int64
	bookingIDCounter   int64
}

type ManagerOption func(*Manager)

// WithProducer publishes ledger events to topic after every change.
func WithProducer(producer Producer, topic string) ManagerOption {
	return func(m *Manager) {
		m.producer = producer
		m.topic = topic
	}
}

func WithTariff(tariff domain.Tariff) ManagerOption {
	return func(m *Manager) {
		m.tariff = tariff
	}
}

func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		passengers:         passengers,
		flights:            flights,
		bookings:           bookings,
		tariff:             domain.DefaultTariff,
		now:                time.Now,
		newToken:           uuid.NewString,
		passengerIDCounter: 1,
		bookingIDCounter:   1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewInMemoryManager wires a manager to fresh in-memory registries.
func NewInMemoryManager(opts ...ManagerOption) *Manager {
	return NewManager(
		repository.NewPassengerRepository(),
		repository.NewFlightRepository(),
		repository.NewBookingRepository(),
		opts...,
	)
}

func (m *Manager) publish(ctx context.Context, event domain.Event) {
	if m.producer == nil || m.topic == "" {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = m.now()
	event.CorrelationID = logger.CorrelationID(ctx)

	if err := m.producer.Publish(ctx, m.topic, event.Key(), event); err != nil {
		logger.FromContext(ctx).
			WithError(err).
			WithField("event_type", event.Type).
			Warn("failed to publish ledger event")
	}
}

func (m *Manager) Passengers() []*domain.Passenger {
	return m.passengers.List()
}

func (m *Manager) Flights() []*domain.Flight {
	return m.flights.List()
}

func (m *Manager) Bookings() []*domain.Booking {
	return m.bookings.List()
}

var _ AirlineUseCase = (*Manager)(nil)
