package repository

import "github.com/Domenick1991/airledger/internal/domain"

// FlightRepository keeps flights in insertion order. Flight numbers are not
// required to be unique; lookups return the first flight added.
type FlightRepository interface {
	Add(flight *domain.Flight)
	GetByNumber(number string) (*domain.Flight, error)
	List() []*domain.Flight
}

type MemoryFlightRepository struct {
	flights []*domain.Flight
}

func NewFlightRepository() FlightRepository {
	return &MemoryFlightRepository{}
}

func (r *MemoryFlightRepository) Add(flight *domain.Flight) {
	r.flights = append(r.flights, flight)
}

func (r *MemoryFlightRepository) GetByNumber(number string) (*domain.Flight, error) {
	for _, f := range r.flights {
		if f.Number == number {
			return f, nil
		}
	}
	return nil, domain.ErrFlightNotFound
}

func (r *MemoryFlightRepository) List() []*domain.Flight {
	return append([]*domain.Flight(nil), r.flights...)
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
