// Package domain contains the core entities of the seat-inventory ledger:
// routes, passengers, reservations, flights and their seat pools.
// Nothing in this package locks; callers serialize access.
package domain

import "fmt"

// Flight is one scheduled flight with a fixed number of seats, a mutable price
// and a ledger of reservations keyed by passenger.
//
// The ledger keeps booking order so summaries are deterministic.
type Flight struct {
	number string
	seats  int
	price  int
	route  AirportPair
	pool   *SeatPool

	ledger       map[Passenger]int
	reservations []Reservation
}

// NewFlight creates a flight with an empty ledger and a full seat pool.
func NewFlight(number string, seats, price int, route AirportPair, rng SeatRandomizer) (*Flight, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: flight number is required", ErrInvalidFlight)
	}
	if seats <= 0 {
		return nil, fmt.Errorf("%w: flight %s must have at least one seat, got %d", ErrInvalidFlight, number, seats)
	}
	if route.IsZero() {
		return nil, fmt.Errorf("%w: flight %s has no route", ErrInvalidFlight, number)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: flight %s has no seat randomizer", ErrInvalidFlight, number)
	}

	return &Flight{
		number: number,
		seats:  seats,
		price:  price,
		route:  route,
		pool:   NewSeatPool(seats, rng),
		ledger: make(map[Passenger]int),
	}, nil
}

// Number returns the flight number.
func (f *Flight) Number() string { return f.number }

// Seats returns the total seat count.
func (f *Flight) Seats() int { return f.seats }

// Price returns the current price per seat.
func (f *Flight) Price() int { return f.price }

// Route returns the flight's origin/destination pair.
func (f *Flight) Route() AirportPair { return f.route }

// Book records the reservation. It returns false and leaves the ledger
// untouched when the passenger already holds a reservation on this flight.
//
// The caller obtains the seat via GenerateSeatNumber and builds the reservation
// with the current price before calling Book.
func (f *Flight) Book(r Reservation) bool {
	if _, ok := f.ledger[r.Passenger]; ok {
		return false
	}
	f.ledger[r.Passenger] = len(f.reservations)
	f.reservations = append(f.reservations, r)
	return true
}

// Cancel removes the reservation held by r.Passenger, if any.
// The seat is not returned to the pool; call RecoverSeat for that.
func (f *Flight) Cancel(r Reservation) {
	i, ok := f.ledger[r.Passenger]
	if !ok {
		return
	}
	delete(f.ledger, r.Passenger)
	f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
	for j := i; j < len(f.reservations); j++ {
		f.ledger[f.reservations[j].Passenger] = j
	}
}

// Reservation returns the passenger's reservation on this flight.
func (f *Flight) Reservation(p Passenger) (Reservation, bool) {
	i, ok := f.ledger[p]
	if !ok {
		return Reservation{}, false
	}
	return f.reservations[i], true
}

// HasPassenger reports whether the passenger holds a reservation.
func (f *Flight) HasPassenger(p Passenger) bool {
	_, ok := f.ledger[p]
	return ok
}

// Reservations returns a copy of the ledger in booking order.
func (f *Flight) Reservations() []Reservation {
	out := make([]Reservation, len(f.reservations))
	copy(out, f.reservations)
	return out
}

// IsFull reports whether every seat is booked.
func (f *Flight) IsFull() bool {
	return len(f.reservations) == f.seats
}

// AvailableSeats returns seats minus booked reservations.
// It always equals the seat pool's available count.
func (f *Flight) AvailableSeats() int {
	return f.seats - len(f.reservations)
}

// SoldSeats returns the number of reservations in the ledger.
func (f *Flight) SoldSeats() int {
	return len(f.reservations)
}

// PoolAvailable exposes the seat pool's own count for invariant checks.
func (f *Flight) PoolAvailable() int {
	return f.pool.Available()
}

// ChangePrice sets the price for future bookings. Existing reservations keep
// their price. Callers holding the flight in a price-ordered index must
// re-sort it around this call.
func (f *Flight) ChangePrice(price int) {
	f.price = price
}

// GenerateSeatNumber issues a free seat from the pool.
func (f *Flight) GenerateSeatNumber() (int, bool) {
	return f.pool.Issue()
}

// RecoverSeat returns a seat to the pool.
func (f *Flight) RecoverSeat(seat int) {
	f.pool.Release(seat)
}

// Summarize builds a read-only projection of the flight's ledger.
// Revenue is the sum of locked-in reservation prices.
func (f *Flight) Summarize() FlightSummary {
	var revenue int64
	for _, r := range f.reservations {
		revenue += int64(r.Price)
	}

	return FlightSummary{
		FlightNumber:   f.number,
		Origin:         f.route.Origin(),
		Destination:    f.route.Destination(),
		Price:          f.price,
		TotalSeats:     f.seats,
		AvailableSeats: f.AvailableSeats(),
		SoldSeats:      f.SoldSeats(),
		Revenue:        revenue,
		Reservations:   f.Reservations(),
	}
}
