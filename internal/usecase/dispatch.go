package usecase

import (
	"fmt"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// Outcome describes what a transaction did to the ledger.
type Outcome struct {
	// Kind is the transaction kind as received
	Kind domain.TransactionKind `json:"kind"`

	// Applied is false when the transaction was dropped as a no-op
	Applied bool `json:"applied"`

	// FlightNumber is the flight that was booked, repriced or cancelled
	FlightNumber string `json:"flightNumber,omitempty"`

	// SeatNumber is the seat issued (book) or recovered (cancel)
	SeatNumber int `json:"seatNumber,omitempty"`

	// Price is the locked-in price (book, cancel) or the new price (reprice)
	Price int `json:"price,omitempty"`

	// Reason explains a dropped transaction
	Reason error `json:"-"`
}

func dropped(tx domain.Transaction, reason error) Outcome {
	return Outcome{Kind: tx.Kind, Reason: reason}
}

// book puts the passenger on the cheapest flight of the route that still has
// a free seat. A passenger already holding a seat on that flight is left as is
// and no seat is consumed.
func (e *reservationEngine) book(tx domain.Transaction) (Outcome, error) {
	passenger, err := domain.NewPassenger(tx.Passenger)
	if err != nil {
		return dropped(tx, err), nil
	}
	route, err := domain.NewAirportPair(tx.Origin, tx.Destination)
	if err != nil {
		return dropped(tx, err), nil
	}

	var target *domain.Flight
	e.index.Ascend(route, func(f *domain.Flight) bool {
		if f.IsFull() {
			return true
		}
		target = f
		return false
	})

	if target == nil {
		if !e.index.HasRoute(route) {
			return dropped(tx, fmt.Errorf("%w: %s", domain.ErrRouteNotFound, route)), nil
		}
		return dropped(tx, fmt.Errorf("%w: %s", domain.ErrRouteFull, route)), nil
	}

	if target.HasPassenger(passenger) {
		return dropped(tx, fmt.Errorf("%w: %s on %s", domain.ErrAlreadyBooked, passenger.Name, target.Number())), nil
	}

	seat, ok := target.GenerateSeatNumber()
	if !ok {
		return Outcome{Kind: tx.Kind}, fmt.Errorf("flight %s: seat pool empty with %d seats available", target.Number(), target.AvailableSeats())
	}

	reservation := domain.Reservation{
		Passenger:  passenger,
		Price:      target.Price(),
		SeatNumber: seat,
	}
	target.Book(reservation)

	return Outcome{
		Kind:         tx.Kind,
		Applied:      true,
		FlightNumber: target.Number(),
		SeatNumber:   seat,
		Price:        reservation.Price,
	}, nil
}

// reprice changes a flight's price and re-sorts its route.
func (e *reservationEngine) reprice(tx domain.Transaction) Outcome {
	f, ok := e.index.Flight(tx.FlightNumber)
	if !ok {
		return dropped(tx, fmt.Errorf("%w: %q", domain.ErrFlightNotFound, tx.FlightNumber))
	}

	e.index.Reprice(f, tx.NewPrice)

	return Outcome{
		Kind:         tx.Kind,
		Applied:      true,
		FlightNumber: f.Number(),
		Price:        tx.NewPrice,
	}
}

// cancel removes the passenger's reservation from the most expensive flight
// of the route on which they hold one, and returns that seat to the pool.
func (e *reservationEngine) cancel(tx domain.Transaction) Outcome {
	passenger, err := domain.NewPassenger(tx.Passenger)
	if err != nil {
		return dropped(tx, err)
	}
	route, err := domain.NewAirportPair(tx.Origin, tx.Destination)
	if err != nil {
		return dropped(tx, err)
	}

	var target *domain.Flight
	e.index.Descend(route, func(f *domain.Flight) bool {
		if !f.HasPassenger(passenger) {
			return true
		}
		target = f
		return false
	})

	if target == nil {
		if !e.index.HasRoute(route) {
			return dropped(tx, fmt.Errorf("%w: %s", domain.ErrRouteNotFound, route))
		}
		return dropped(tx, fmt.Errorf("%w: %s on %s", domain.ErrReservationNotFound, passenger.Name, route))
	}

	reservation, _ := target.Reservation(passenger)
	target.Cancel(reservation)
	target.RecoverSeat(reservation.SeatNumber)

	return Outcome{
		Kind:         tx.Kind,
		Applied:      true,
		FlightNumber: target.Number(),
		SeatNumber:   reservation.SeatNumber,
		Price:        reservation.Price,
	}
}
