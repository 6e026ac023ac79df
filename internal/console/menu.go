package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/logger"
	"github.com/Domenick1991/airledger/internal/service/airline"
)

const (
	optionAddPassenger = iota + 1
	optionAddFlight
	optionCreateBooking
	optionCancelBooking
	optionAvailableFlights
	optionPassengerBookings
	optionRevenue
	optionCountFlights
	optionUpdateFlightTime
	optionFlightPassengers
	optionExit
	optionBaggageFee
)

const menuText = `
===== MENU =====
1. Add passenger
2. Add flight
3. Create booking
4. Cancel booking
5. Show available flights
6. Show bookings of a passenger
7. Total revenue
8. Count domestic/international flights
9. Update departure time
10. Show passengers of a flight
11. Exit
12. Quote baggage fee
`

const DefaultPrompt = "Choose an option: "

var errInvalidNumber = errors.New("invalid number")

type Menu struct {
	airline airline.AirlineUseCase
	in      *bufio.Scanner
	out     io.Writer
	prompt  string
}

type MenuOption func(*Menu)

func WithPrompt(prompt string) MenuOption {
	return func(m *Menu) {
		if prompt != "" {
			m.prompt = prompt
		}
	}
}

func NewMenu(uc airline.AirlineUseCase, in io.Reader, out io.Writer, opts ...MenuOption) *Menu {
	m := &Menu{
		airline: uc,
		in:      bufio.NewScanner(in),
		out:     out,
		prompt:  DefaultPrompt,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run serves menu commands until the exit option, end of input or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		line, err := m.ask(m.prompt)
		if err != nil {
			return ignoreEOF(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			m.println("Unknown option.")
			continue
		}
		if choice == optionExit {
			m.println("Exiting...")
			return nil
		}

		cmdCtx := logger.WithCorrelationID(ctx, logger.NewCorrelationID())
		logger.FromContext(cmdCtx).WithField("option", choice).Debug("menu command")

		if err := m.dispatch(cmdCtx, choice); err != nil {
			if errors.Is(err, errInvalidNumber) {
				m.println("Invalid number, command aborted.")
				continue
			}
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optionAddPassenger:
		return m.addPassenger(ctx)
	case optionAddFlight:
		return m.addFlight(ctx)
	case optionCreateBooking:
		return m.createBooking(ctx)
	case optionCancelBooking:
		return m.cancelBooking(ctx)
	case optionAvailableFlights:
		return m.availableFlights()
	case optionPassengerBookings:
		return m.passengerBookings()
	case optionRevenue:
		m.printf("Revenue: %d\n", m.airline.TotalRevenue())
		return nil
	case optionCountFlights:
		counts := m.airline.CountFlightsByType()
		m.printf("Domestic: %d International: %d\n", counts.Domestic, counts.International)
		return nil
	case optionUpdateFlightTime:
		return m.updateFlightTime(ctx)
	case optionFlightPassengers:
		return m.flightPassengers()
	case optionBaggageFee:
		return m.baggageFee()
	default:
		m.println("Unknown option.")
		return nil
	}
}

func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) askInt(prompt string) (int, error) {
	line, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, line)
	}
	return n, nil
}

func (m *Menu) askFloat(prompt string) (float64, error) {
	line, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, line)
	}
	return f, nil
}

func (m *Menu) println(a ...interface{}) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.out, format, a...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func flightNumbers(flights []*domain.Flight) string {
	if len(flights) == 0 {
		return "none"
	}
	numbers := make([]string, 0, len(flights))
	for _, f := range flights {
		numbers = append(numbers, f.Number)
	}
	return strings.Join(numbers, ", ")
}
