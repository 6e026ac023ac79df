package domain

import "time"

type EventType string

const (
	EventPassengerAdded    EventType = "passenger_added"
	EventFlightAdded       EventType = "flight_added"
	EventFlightRescheduled EventType = "flight_rescheduled"
	EventBookingCreated    EventType = "booking_created"
	EventBookingCancelled  EventType = "booking_cancelled"
)

// Event describes a change to the ledger. Fields that do not apply to the
// event type are left empty.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	OccurredAt    time.Time `json:"occurred_at"`
	PassengerID   int64     `json:"passenger_id,omitempty"`
	PassengerName string    `json:"passenger_name,omitempty"`
	FlightNumber  string    `json:"flight_number,omitempty"`
	DepartureTime string    `json:"departure_time,omitempty"`
	BookingID     int64     `json:"booking_id,omitempty"`
	BookingToken  string    `json:"booking_token,omitempty"`
	Tickets       int       `json:"tickets,omitempty"`
	TotalCost     int64     `json:"total_cost,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// Key is used as the message key so events of one flight stay ordered.
func (e Event) Key() string {
	if e.FlightNumber != "" {
		return e.FlightNumber
	}
	return e.ID
}
