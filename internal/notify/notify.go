package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/airledger/internal/domain"
)

// Sender renders ledger events as passenger notices.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event domain.Event) error {
	notice := Notice(event)
	if notice == "" {
		return nil
	}
	_, err := fmt.Fprintln(s.out, notice)
	return err
}

// Notice returns the text sent for event, or "" for event types nobody is told about.
func Notice(event domain.Event) string {
	switch event.Type {
	case domain.EventPassengerAdded:
		return fmt.Sprintf("to %s: welcome aboard, your passenger id is %d", event.PassengerName, event.PassengerID)
	case domain.EventBookingCreated:
		return fmt.Sprintf("to %s: booking #%d on flight %s departing %s, %d ticket(s), total %d, reference %s",
			event.PassengerName, event.BookingID, event.FlightNumber, event.DepartureTime,
			event.Tickets, event.TotalCost, event.BookingToken)
	case domain.EventBookingCancelled:
		return fmt.Sprintf("to %s: booking #%d on flight %s has been cancelled",
			event.PassengerName, event.BookingID, event.FlightNumber)
	case domain.EventFlightRescheduled:
		return fmt.Sprintf("to passengers of %s: new departure time %s", event.FlightNumber, event.DepartureTime)
	default:
		return ""
	}
}
