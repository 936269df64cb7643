package domain

import "time"

// FlightSummary is the settlement view of a single flight.
type FlightSummary struct {
	// FlightNumber identifies the flight (e.g. "K792")
	FlightNumber string `json:"flightNumber"`

	// Origin and Destination are the route codes
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Price is the current price per seat
	Price int `json:"price"`

	// TotalSeats is the flight capacity
	TotalSeats int `json:"totalSeats"`

	// AvailableSeats is the number of unsold seats
	AvailableSeats int `json:"availableSeats"`

	// SoldSeats is the number of reservations held
	SoldSeats int `json:"soldSeats"`

	// Revenue is the sum of locked-in reservation prices
	Revenue int64 `json:"revenue"`

	// Reservations lists passenger, seat and price rows in booking order
	Reservations []Reservation `json:"reservations"`
}

// SettlementReport is the per-flight and system-wide outcome of a run.
type SettlementReport struct {
	// RunID correlates the report with the logs of the run that produced it
	RunID string `json:"runId,omitempty"`

	// GeneratedAt is when the report was assembled
	GeneratedAt time.Time `json:"generatedAt"`

	// Flights holds one summary per registered flight number, in registration order
	Flights []FlightSummary `json:"flights"`

	// TotalSeatsSold is the sum of SoldSeats over Flights
	TotalSeatsSold int `json:"totalSeatsSold"`

	// TotalRevenue is the sum of Revenue over Flights
	TotalRevenue int64 `json:"totalRevenue"`
}
