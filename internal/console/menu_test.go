package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/airline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAirlineUseCase is a mock implementation of airline.AirlineUseCase
type MockAirlineUseCase struct {
	mock.Mock
}

func (m *MockAirlineUseCase) AddPassenger(ctx context.Context, name, passport string) *domain.Passenger {
	args := m.Called(ctx, name, passport)
	return args.Get(0).(*domain.Passenger)
}

func (m *MockAirlineUseCase) AddFlight(ctx context.Context, flight *domain.Flight) {
	m.Called(ctx, flight)
}

func (m *MockAirlineUseCase) CreateBooking(ctx context.Context, passengerID int64, flightNumber string, tickets int) (*domain.Booking, error) {
	args := m.Called(ctx, passengerID, flightNumber, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockAirlineUseCase) CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockAirlineUseCase) UpdateFlightTime(ctx context.Context, flightNumber, newTime string) error {
	args := m.Called(ctx, flightNumber, newTime)
	return args.Error(0)
}

func (m *MockAirlineUseCase) ListAvailableFlights(origin, destination string) []*domain.Flight {
	args := m.Called(origin, destination)
	return args.Get(0).([]*domain.Flight)
}

func (m *MockAirlineUseCase) ListBookingsByPassenger(passengerID int64) []*domain.Booking {
	args := m.Called(passengerID)
	return args.Get(0).([]*domain.Booking)
}

func (m *MockAirlineUseCase) TotalRevenue() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockAirlineUseCase) CountFlightsByType() domain.FlightCounts {
	args := m.Called()
	return args.Get(0).(domain.FlightCounts)
}

func (m *MockAirlineUseCase) FlightPassengerList(flightNumber string) []string {
	args := m.Called(flightNumber)
	return args.Get(0).([]string)
}

func (m *MockAirlineUseCase) QuoteBaggageFee(flightNumber string, weight float64) (float64, error) {
	args := m.Called(flightNumber, weight)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAirlineUseCase) Passengers() []*domain.Passenger {
	args := m.Called()
	return args.Get(0).([]*domain.Passenger)
}

func (m *MockAirlineUseCase) Flights() []*domain.Flight {
	args := m.Called()
	return args.Get(0).([]*domain.Flight)
}

func (m *MockAirlineUseCase) Bookings() []*domain.Booking {
	args := m.Called()
	return args.Get(0).([]*domain.Booking)
}

func runMenu(t *testing.T, uc airline.AirlineUseCase, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(uc, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func TestMenu_ExitAndEOF(t *testing.T) {
	uc := &MockAirlineUseCase{}

	out := runMenu(t, uc, "11", "7")
	assert.Contains(t, out, "===== MENU =====")
	assert.Contains(t, out, "Exiting...")
	assert.NotContains(t, out, "Revenue")

	out = runMenu(t, uc)
	assert.Contains(t, out, DefaultPrompt)

	uc.AssertNotCalled(t, "TotalRevenue")
}

func TestMenu_PrintsMenuThenPrompt(t *testing.T) {
	out := runMenu(t, &MockAirlineUseCase{}, "11")

	assert.True(t, strings.HasPrefix(out, menuText+DefaultPrompt))
	assert.Equal(t, menuText+DefaultPrompt+"Exiting...\n", out)
}

func TestMenu_UnknownOption(t *testing.T) {
	out := runMenu(t, &MockAirlineUseCase{}, "abc", "42", "11")
	assert.Equal(t, 2, strings.Count(out, "Unknown option."))
}

func TestMenu_AddPassenger(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("AddPassenger", mock.Anything, "Alice", "P123").
		Return(&domain.Passenger{ID: 1, Name: "Alice", PassportNumber: "P123"}).Once()

	out := runMenu(t, uc, "1", "Alice", "P123", "11")

	assert.Contains(t, out, "Added Passenger #1 - Alice, Passport: P123")
	uc.AssertExpectations(t)
}

func TestMenu_AddFlight(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("AddFlight", mock.Anything, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.Kind == domain.FlightKindDomestic && f.Number == "VN100" &&
			f.Origin == "HAN" && f.Destination == "SGN" && f.DepartureTime == "10:00" && f.Capacity == 2
	})).Return().Once()

	out := runMenu(t, uc, "2", "domestic", "VN100", "HAN", "SGN", "10:00", "2", "11")

	assert.Contains(t, out, "Added Flight VN100 (domestic) HAN -> SGN at 10:00, seats 0/2")
	uc.AssertExpectations(t)
}

func TestMenu_AddFlight_InvalidCapacity(t *testing.T) {
	uc := &MockAirlineUseCase{}

	out := runMenu(t, uc, "2", "domestic", "VN100", "HAN", "SGN", "10:00", "two", "11")

	assert.Contains(t, out, "Invalid number, command aborted.")
	assert.Contains(t, out, "Exiting...")
	uc.AssertNotCalled(t, "AddFlight", mock.Anything, mock.Anything)
}

func TestMenu_CreateBooking(t *testing.T) {
	uc := &MockAirlineUseCase{}
	booking := &domain.Booking{
		ID:        1,
		Passenger: &domain.Passenger{ID: 1, Name: "Alice"},
		Flight:    &domain.Flight{Number: "VN100"},
		Tickets:   2,
		TotalCost: 400,
	}
	uc.On("CreateBooking", mock.Anything, int64(1), "VN100", 2).Return(booking, nil).Once()
	uc.On("CreateBooking", mock.Anything, int64(1), "VN100", 1).Return(nil, domain.ErrFlightFull).Once()

	out := runMenu(t, uc, "3", "1", "VN100", "2", "3", "1", "VN100", "1", "11")

	assert.Contains(t, out, "Booking successful: Booking #1 - Alice on flight VN100, Tickets: 2, Total: 400")
	assert.Contains(t, out, "Booking failed: flight is full")
	uc.AssertExpectations(t)
}

func TestMenu_CancelBooking(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("CancelBooking", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1}, nil).Once()
	uc.On("CancelBooking", mock.Anything, int64(5)).Return(nil, domain.ErrBookingNotFound).Once()

	out := runMenu(t, uc, "4", "1", "4", "5", "11")

	assert.Contains(t, out, "Booking cancelled!")
	assert.Contains(t, out, "Booking #5 not found, nothing cancelled.")
	uc.AssertExpectations(t)
}

func TestMenu_Queries(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("ListAvailableFlights", "HAN", "SGN").Return([]*domain.Flight{{Number: "VN1"}, {Number: "VN2"}}).Once()
	uc.On("ListAvailableFlights", "HAN", "HUI").Return([]*domain.Flight(nil)).Once()
	uc.On("ListBookingsByPassenger", int64(1)).Return([]*domain.Booking{{
		ID: 1, Passenger: &domain.Passenger{Name: "Alice"}, Flight: &domain.Flight{Number: "VN1"}, Tickets: 1, TotalCost: 200,
	}}).Once()
	uc.On("ListBookingsByPassenger", int64(2)).Return([]*domain.Booking(nil)).Once()
	uc.On("TotalRevenue").Return(int64(200)).Once()
	uc.On("CountFlightsByType").Return(domain.FlightCounts{Domestic: 2, International: 1}).Once()
	uc.On("FlightPassengerList", "VN1").Return([]string{"Alice", "Bob"}).Once()
	uc.On("FlightPassengerList", "VN9").Return([]string(nil)).Once()

	out := runMenu(t, uc,
		"5", "HAN", "SGN",
		"5", "HAN", "HUI",
		"6", "1",
		"6", "2",
		"7",
		"8",
		"10", "VN1",
		"10", "VN9",
		"11",
	)

	assert.Contains(t, out, "Available flights: VN1, VN2")
	assert.Contains(t, out, "Available flights: none")
	assert.Contains(t, out, "Booking #1 - Alice on flight VN1, Tickets: 1, Total: 200")
	assert.Contains(t, out, "No bookings for passenger #2.")
	assert.Contains(t, out, "Revenue: 200")
	assert.Contains(t, out, "Domestic: 2 International: 1")
	assert.Contains(t, out, "Passengers on VN1: Alice, Bob")
	assert.Contains(t, out, "Passengers on VN9: none")
	uc.AssertExpectations(t)
}

func TestMenu_UpdateFlightTime(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("UpdateFlightTime", mock.Anything, "VN1", "12:00").Return(nil).Once()
	uc.On("UpdateFlightTime", mock.Anything, "VN9", "12:00").Return(domain.ErrFlightNotFound).Once()

	out := runMenu(t, uc, "9", "VN1", "12:00", "9", "VN9", "12:00", "11")

	assert.Contains(t, out, "Flight time updated!")
	assert.Contains(t, out, "Flight VN9 not found, nothing updated.")
	uc.AssertExpectations(t)
}

func TestMenu_BaggageFee(t *testing.T) {
	uc := &MockAirlineUseCase{}
	uc.On("QuoteBaggageFee", "VN1", 2.5).Return(125000.0, nil).Once()
	uc.On("QuoteBaggageFee", "VN9", 1.0).Return(0.0, domain.ErrFlightNotFound).Once()

	out := runMenu(t, uc, "12", "VN1", "2.5", "12", "VN9", "1", "12", "VN1", "heavy", "11")

	assert.Contains(t, out, "Baggage fee: 125000")
	assert.Contains(t, out, "Quote failed: flight not found")
	assert.Contains(t, out, "Invalid number, command aborted.")
	uc.AssertExpectations(t)
}

func TestMenu_EOFMidCommand(t *testing.T) {
	uc := &MockAirlineUseCase{}

	out := runMenu(t, uc, "1", "Alice")

	assert.Contains(t, out, "Passport number: ")
	uc.AssertNotCalled(t, "AddPassenger", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenu_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	menu := NewMenu(&MockAirlineUseCase{}, strings.NewReader("7\n"), &bytes.Buffer{})
	assert.ErrorIs(t, menu.Run(ctx), context.Canceled)
}

func TestMenu_WithPrompt(t *testing.T) {
	var out bytes.Buffer
	menu := NewMenu(&MockAirlineUseCase{}, strings.NewReader("11\n"), &out, WithPrompt("> "))

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "> ")
	assert.NotContains(t, out.String(), DefaultPrompt)
}

func TestMenu_AgainstLedger(t *testing.T) {
	manager := airline.NewInMemoryManager()

	out := runMenu(t, manager,
		"1", "Alice", "P123",
		"2", "domestic", "VN100", "HAN", "SGN", "10:00", "2",
		"3", "1", "VN100", "2",
		"3", "1", "VN100", "1",
		"5", "HAN", "SGN",
		"7",
		"4", "1",
		"5", "HAN", "SGN",
		"7",
		"11",
	)

	assert.Contains(t, out, "Booking successful: Booking #1 - Alice on flight VN100, Tickets: 2, Total: 400")
	assert.Contains(t, out, "Booking failed: flight is full")
	assert.Contains(t, out, "Available flights: none")
	assert.Contains(t, out, "Revenue: 400")
	assert.Contains(t, out, "Booking cancelled!")
	assert.Contains(t, out, "Available flights: VN100")
	assert.Contains(t, out, "Revenue: 0")
	assert.Empty(t, manager.Bookings())
}
