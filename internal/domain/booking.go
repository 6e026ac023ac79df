package domain

import (
	"fmt"
	"time"
)

type Booking struct {
	ID        int64      `json:"id"`
	Token     string     `json:"token"`
	Passenger *Passenger `json:"passenger"`
	Flight    *Flight    `json:"flight"`
	Tickets   int        `json:"number_of_tickets"`
	TotalCost int64      `json:"total_cost"`
	CreatedAt time.Time  `json:"created_at"`
}

func (b *Booking) Details() string {
	return fmt.Sprintf("Booking #%d - %s on flight %s, Tickets: %d, Total: %d",
		b.ID, b.Passenger.Name, b.Flight.Number, b.Tickets, b.TotalCost)
}
