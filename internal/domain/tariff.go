package domain

import "math"

// Tariff holds the flat rates used for tickets and baggage.
type Tariff struct {
	TicketPrice               int64
	DomesticBaggagePerKg      float64
	InternationalBaggagePerKg float64
}

var DefaultTariff = Tariff{
	TicketPrice:               200,
	DomesticBaggagePerKg:      50000,
	InternationalBaggagePerKg: 10,
}

// CanPrice reports whether TicketCost(tickets) fits in an int64.
func (t Tariff) CanPrice(tickets int) bool {
	if t.TicketPrice <= 0 || tickets <= 0 {
		return true
	}
	return int64(tickets) <= math.MaxInt64/t.TicketPrice
}

func (t Tariff) TicketCost(tickets int) int64 {
	return int64(tickets) * t.TicketPrice
}

// BaggageFee charges weight at the per-kilogram rate of the flight kind.
// Flights of unspecified kind carry baggage for free.
func (t Tariff) BaggageFee(kind FlightKind, weight float64) float64 {
	switch kind {
	case FlightKindDomestic:
		return weight * t.DomesticBaggagePerKg
	case FlightKindInternational:
		return weight * t.InternationalBaggagePerKg
	default:
		return 0
	}
}
