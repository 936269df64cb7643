package domain

import "fmt"

// Passenger is identified by name alone. Two transactions naming the same
// passenger refer to the same identity.
type Passenger struct {
	Name string `json:"name"`
}

// NewPassenger validates the name and returns a Passenger.
func NewPassenger(name string) (Passenger, error) {
	if name == "" {
		return Passenger{}, fmt.Errorf("%w: name is required", ErrInvalidPassenger)
	}
	return Passenger{Name: name}, nil
}

// Reservation is a locked-in booking on a flight. Price is the flight price at
// booking time and does not follow later price changes.
type Reservation struct {
	Passenger  Passenger `json:"passenger"`
	Price      int       `json:"price"`
	SeatNumber int       `json:"seatNumber"`
}
