package repository

import "github.com/Domenick1991/airledger/internal/domain"

type BookingRepository interface {
	Add(booking *domain.Booking)
	Remove(id int64) (*domain.Booking, error)
	List() []*domain.Booking
}

type MemoryBookingRepository struct {
	bookings []*domain.Booking
}

func NewBookingRepository() BookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Add(booking *domain.Booking) {
	r.bookings = append(r.bookings, booking)
}

// Remove drops every booking with the given id and returns the first one.
func (r *MemoryBookingRepository) Remove(id int64) (*domain.Booking, error) {
	var removed *domain.Booking
	kept := r.bookings[:0]
	for _, b := range r.bookings {
		if b.ID == id {
			if removed == nil {
				removed = b
			}
			continue
		}
		kept = append(kept, b)
	}
	if removed == nil {
		return nil, domain.ErrBookingNotFound
	}
	clear(r.bookings[len(kept):])
	r.bookings = kept
	return removed, nil
}

func (r *MemoryBookingRepository) List() []*domain.Booking {
	return append([]*domain.Booking(nil), r.bookings...)
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
