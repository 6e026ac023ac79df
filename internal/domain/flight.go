package domain

import (
	"fmt"
	"strings"
)

type FlightKind string

const (
	FlightKindUnspecified   FlightKind = ""
	FlightKindDomestic      FlightKind = "DOMESTIC"
	FlightKindInternational FlightKind = "INTERNATIONAL"
)

// ParseFlightKind maps menu input to a kind. The input is trimmed and compared
// case-insensitively, so " Domestic " is domestic; anything else, including a
// typo, is international.
func ParseFlightKind(s string) FlightKind {
	if strings.EqualFold(strings.TrimSpace(s), "domestic") {
		return FlightKindDomestic
	}
	return FlightKindInternational
}

func (k FlightKind) String() string {
	switch k {
	case FlightKindDomestic:
		return "domestic"
	case FlightKindInternational:
		return "international"
	default:
		return "unspecified"
	}
}

// Flight is a scheduled route with a fixed seat capacity.
// BookedSeats stays within [0, Capacity].
type Flight struct {
	Number        string     `json:"flight_number"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureTime string     `json:"departure_time"`
	Capacity      int        `json:"capacity"`
	BookedSeats   int        `json:"booked_seats"`
	Kind          FlightKind `json:"kind"`
}

func NewDomesticFlight(number, origin, destination, departure string, capacity int) *Flight {
	return NewFlight(FlightKindDomestic, number, origin, destination, departure, capacity)
}

func NewInternationalFlight(number, origin, destination, departure string, capacity int) *Flight {
	return NewFlight(FlightKindInternational, number, origin, destination, departure, capacity)
}

// NewFlight builds an empty flight. A negative capacity is treated as zero.
func NewFlight(kind FlightKind, number, origin, destination, departure string, capacity int) *Flight {
	if capacity < 0 {
		capacity = 0
	}
	return &Flight{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		Capacity:      capacity,
		Kind:          kind,
	}
}

// BookSeat reserves a single seat. It reports false and changes nothing when
// the flight is full.
func (f *Flight) BookSeat() bool {
	if f.IsFull() {
		return false
	}
	f.BookedSeats++
	return true
}

// ReserveSeats reserves n seats at once or none at all.
func (f *Flight) ReserveSeats(n int) bool {
	if n <= 0 || n > f.AvailableSeats() {
		return false
	}
	f.BookedSeats += n
	return true
}

func (f *Flight) ReleaseSeats(n int) {
	if n <= 0 {
		return
	}
	f.BookedSeats -= n
	if f.BookedSeats < 0 {
		f.BookedSeats = 0
	}
}

func (f *Flight) IsFull() bool {
	return f.BookedSeats >= f.Capacity
}

func (f *Flight) AvailableSeats() int {
	if f.IsFull() {
		return 0
	}
	return f.Capacity - f.BookedSeats
}

// BaggageFee prices checked baggage with the default tariff.
func (f *Flight) BaggageFee(weight float64) float64 {
	return DefaultTariff.BaggageFee(f.Kind, weight)
}

func (f *Flight) Details() string {
	return fmt.Sprintf("Flight %s (%s) %s -> %s at %s, seats %d/%d",
		f.Number, f.Kind, f.Origin, f.Destination, f.DepartureTime, f.BookedSeats, f.Capacity)
}

type FlightCounts struct {
	Domestic      int `json:"domestic"`
	International int `json:"international"`
}
