package domain

import "errors"

var (
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrFlightFull         = errors.New("flight is full")
	ErrNotEnoughSeats     = errors.New("not enough seats available")
	ErrInvalidTicketCount = errors.New("number of tickets must be positive")
)
