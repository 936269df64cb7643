package domain

import (
	"fmt"
	"regexp"
)

// Airport codes are three ASCII letters in either case; case is kept as given.
var airportCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// AirportPair identifies a route by its origin and destination codes.
// It is a comparable value and is used directly as a map key.
// The pair is order-sensitive: (CHI, DFW) and (DFW, CHI) are different routes.
type AirportPair struct {
	origin      string
	destination string
}

// NewAirportPair validates both codes and builds the route key.
// Codes must be exactly 3 ASCII letters; case is accepted as given and not normalized.
func NewAirportPair(origin, destination string) (AirportPair, error) {
	if !IsAirportCode(origin) {
		return AirportPair{}, fmt.Errorf("%w: origin must be a 3-letter code, got %q", ErrInvalidAirportCode, origin)
	}
	if !IsAirportCode(destination) {
		return AirportPair{}, fmt.Errorf("%w: destination must be a 3-letter code, got %q", ErrInvalidAirportCode, destination)
	}

	return AirportPair{origin: origin, destination: destination}, nil
}

// MustAirportPair is like NewAirportPair but panics on invalid input.
// Intended for tests and static tables.
func MustAirportPair(origin, destination string) AirportPair {
	pair, err := NewAirportPair(origin, destination)
	if err != nil {
		panic(err)
	}
	return pair
}

// Origin returns the origin code.
func (p AirportPair) Origin() string {
	return p.origin
}

// Destination returns the destination code.
func (p AirportPair) Destination() string {
	return p.destination
}

// IsZero reports whether the pair was never initialized.
func (p AirportPair) IsZero() bool {
	return p.origin == "" && p.destination == ""
}

func (p AirportPair) String() string {
	return p.origin + "-" + p.destination
}

// IsAirportCode reports whether code is a valid airport/city code.
func IsAirportCode(code string) bool {
	return airportCodePattern.MatchString(code)
}
