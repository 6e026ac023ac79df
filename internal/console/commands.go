package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Domenick1991/airledger/internal/domain"
)

func (m *Menu) addPassenger(ctx context.Context) error {
	name, err := m.ask("Passenger name: ")
	if err != nil {
		return err
	}
	passport, err := m.ask("Passport number: ")
	if err != nil {
		return err
	}

	p := m.airline.AddPassenger(ctx, name, passport)
	m.println("Added", p.Details())
	return nil
}

func (m *Menu) addFlight(ctx context.Context) error {
	kind, err := m.ask("Type (domestic/international): ")
	if err != nil {
		return err
	}
	number, err := m.ask("Flight number: ")
	if err != nil {
		return err
	}
	origin, err := m.ask("Origin: ")
	if err != nil {
		return err
	}
	destination, err := m.ask("Destination: ")
	if err != nil {
		return err
	}
	departure, err := m.ask("Departure time: ")
	if err != nil {
		return err
	}
	capacity, err := m.askInt("Capacity: ")
	if err != nil {
		return err
	}

	flight := domain.NewFlight(domain.ParseFlightKind(kind), number, origin, destination, departure, capacity)
	m.airline.AddFlight(ctx, flight)
	m.println("Added", flight.Details())
	return nil
}

func (m *Menu) createBooking(ctx context.Context) error {
	passengerID, err := m.askInt("Passenger ID: ")
	if err != nil {
		return err
	}
	number, err := m.ask("Flight number: ")
	if err != nil {
		return err
	}
	tickets, err := m.askInt("Number of tickets: ")
	if err != nil {
		return err
	}

	booking, err := m.airline.CreateBooking(ctx, int64(passengerID), number, tickets)
	if err != nil {
		m.println("Booking failed:", err)
		return nil
	}
	m.println("Booking successful:", booking.Details())
	return nil
}

func (m *Menu) cancelBooking(ctx context.Context) error {
	bookingID, err := m.askInt("Booking ID to cancel: ")
	if err != nil {
		return err
	}

	if _, err := m.airline.CancelBooking(ctx, int64(bookingID)); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			m.printf("Booking #%d not found, nothing cancelled.\n", bookingID)
			return nil
		}
		return err
	}
	m.println("Booking cancelled!")
	return nil
}

func (m *Menu) availableFlights() error {
	origin, err := m.ask("Origin: ")
	if err != nil {
		return err
	}
	destination, err := m.ask("Destination: ")
	if err != nil {
		return err
	}

	m.println("Available flights:", flightNumbers(m.airline.ListAvailableFlights(origin, destination)))
	return nil
}

func (m *Menu) passengerBookings() error {
	passengerID, err := m.askInt("Passenger ID: ")
	if err != nil {
		return err
	}

	bookings := m.airline.ListBookingsByPassenger(int64(passengerID))
	if len(bookings) == 0 {
		m.printf("No bookings for passenger #%d.\n", passengerID)
		return nil
	}
	for _, b := range bookings {
		m.println(b.Details())
	}
	return nil
}

func (m *Menu) updateFlightTime(ctx context.Context) error {
	number, err := m.ask("Flight number: ")
	if err != nil {
		return err
	}
	newTime, err := m.ask("New departure time: ")
	if err != nil {
		return err
	}

	if err := m.airline.UpdateFlightTime(ctx, number, newTime); err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			m.printf("Flight %s not found, nothing updated.\n", number)
			return nil
		}
		return err
	}
	m.println("Flight time updated!")
	return nil
}

func (m *Menu) flightPassengers() error {
	number, err := m.ask("Flight number: ")
	if err != nil {
		return err
	}

	names := m.airline.FlightPassengerList(number)
	list := "none"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}
	m.printf("Passengers on %s: %s\n", number, list)
	return nil
}

func (m *Menu) baggageFee() error {
	number, err := m.ask("Flight number: ")
	if err != nil {
		return err
	}
	weight, err := m.askFloat("Baggage weight (kg): ")
	if err != nil {
		return err
	}

	fee, err := m.airline.QuoteBaggageFee(number, weight)
	if err != nil {
		m.println("Quote failed:", err)
		return nil
	}
	m.println("Baggage fee:", strconv.FormatFloat(fee, 'f', -1, 64))
	return nil
}
