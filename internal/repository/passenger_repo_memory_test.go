package repository

import (
	"testing"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassengerRepository_AddAndGet(t *testing.T) {
	repo := NewPassengerRepository()
	alice := &domain.Passenger{ID: 1, Name: "Alice", PassportNumber: "P123"}
	bob := &domain.Passenger{ID: 2, Name: "Bob", PassportNumber: "P456"}
	repo.Add(alice)
	repo.Add(bob)

	got, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Same(t, bob, got)
	assert.Equal(t, []*domain.Passenger{alice, bob}, repo.List())
}

func TestPassengerRepository_GetByID_NotFound(t *testing.T) {
	repo := NewPassengerRepository()

	got, err := repo.GetByID(1)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrPassengerNotFound)
}
