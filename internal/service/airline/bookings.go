package airline

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/logger"
)

// CreateBooking reserves tickets seats on the first flight with flightNumber
// for the passenger. Seats are reserved all at once: a failed booking leaves
// the flight untouched.
func (m *Manager) CreateBooking(ctx context.Context, passengerID int64, flightNumber string, tickets int) (*domain.Booking, error) {
	log := logger.FromContext(ctx).
		WithField("passenger_id", passengerID).
		WithField("flight_number", flightNumber).
		WithField("tickets", tickets)

	if tickets <= 0 {
		log.Info("booking rejected: ticket count")
		return nil, domain.ErrInvalidTicketCount
	}
	if !m.tariff.CanPrice(tickets) {
		log.Info("booking rejected: ticket count too large")
		return nil, fmt.Errorf("%w: %d tickets overflow the total cost", domain.ErrInvalidTicketCount, tickets)
	}

	passenger, err := m.passengers.GetByID(passengerID)
	if err != nil {
		log.Info("booking rejected: unknown passenger")
		return nil, err
	}
	flight, err := m.flights.GetByNumber(flightNumber)
	if err != nil {
		log.Info("booking rejected: unknown flight")
		return nil, err
	}
	if flight.IsFull() {
		log.Info("booking rejected: flight full")
		return nil, domain.ErrFlightFull
	}
	if !flight.ReserveSeats(tickets) {
		log.WithField("available", flight.AvailableSeats()).Info("booking rejected: not enough seats")
		return nil, fmt.Errorf("%w: %d requested, %d left", domain.ErrNotEnoughSeats, tickets, flight.AvailableSeats())
	}

	booking := &domain.Booking{
		ID:        m.bookingIDCounter,
		Token:     m.newToken(),
		Passenger: passenger,
		Flight:    flight,
		Tickets:   tickets,
		TotalCost: m.tariff.TicketCost(tickets),
		CreatedAt: m.now(),
	}
	m.bookingIDCounter++
	m.bookings.Add(booking)

	log.WithField("booking_id", booking.ID).Info("booking created")
	m.publish(ctx, bookingEvent(domain.EventBookingCreated, booking))
	return booking, nil
}

// CancelBooking removes the booking and gives its seats back to the flight.
// An unknown id changes nothing and yields ErrBookingNotFound. Ids are never
// reused.
func (m *Manager) CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	log := logger.FromContext(ctx).WithField("booking_id", bookingID)

	booking, err := m.bookings.Remove(bookingID)
	if err != nil {
		log.Info("no booking to cancel")
		return nil, err
	}
	booking.Flight.ReleaseSeats(booking.Tickets)

	log.WithField("released_seats", booking.Tickets).Info("booking cancelled")
	m.publish(ctx, bookingEvent(domain.EventBookingCancelled, booking))
	return booking, nil
}

func (m *Manager) ListBookingsByPassenger(passengerID int64) []*domain.Booking {
	var found []*domain.Booking
	for _, b := range m.bookings.List() {
		if b.Passenger.ID == passengerID {
			found = append(found, b)
		}
	}
	return found
}

func (m *Manager) TotalRevenue() int64 {
	var total int64
	for _, b := range m.bookings.List() {
		total += b.TotalCost
	}
	return total
}

// FlightPassengerList returns passenger names of every booking on a flight with
// this number, in booking order. A passenger with several bookings appears
// once per booking.
func (m *Manager) FlightPassengerList(flightNumber string) []string {
	var names []string
	for _, b := range m.bookings.List() {
		if b.Flight.Number == flightNumber {
			names = append(names, b.Passenger.Name)
		}
	}
	return names
}

func bookingEvent(eventType domain.EventType, b *domain.Booking) domain.Event {
	return domain.Event{
		Type:          eventType,
		PassengerID:   b.Passenger.ID,
		PassengerName: b.Passenger.Name,
		FlightNumber:  b.Flight.Number,
		DepartureTime: b.Flight.DepartureTime,
		BookingID:     b.ID,
		BookingToken:  b.Token,
		Tickets:       b.Tickets,
		TotalCost:     b.TotalCost,
	}
}
