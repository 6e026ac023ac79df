package repository

import "github.com/Domenick1991/airledger/internal/domain"

type PassengerRepository interface {
	Add(passenger *domain.Passenger)
	GetByID(id int64) (*domain.Passenger, error)
	List() []*domain.Passenger
}

type MemoryPassengerRepository struct {
	passengers []*domain.Passenger
}

func NewPassengerRepository() PassengerRepository {
	return &MemoryPassengerRepository{}
}

func (r *MemoryPassengerRepository) Add(passenger *domain.Passenger) {
	r.passengers = append(r.passengers, passenger)
}

func (r *MemoryPassengerRepository) GetByID(id int64) (*domain.Passenger, error) {
	for _, p := range r.passengers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPassengerNotFound
}

func (r *MemoryPassengerRepository) List() []*domain.Passenger {
	return append([]*domain.Passenger(nil), r.passengers...)
}

var _ PassengerRepository = (*MemoryPassengerRepository)(nil)
