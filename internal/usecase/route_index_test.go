package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/test/testutil"
)

// newIndexFlight creates a flight for index tests.
func newIndexFlight(t *testing.T, number string, price int, origin, destination string) *domain.Flight {
	t.Helper()
	f, err := domain.NewFlight(number, 10, price, domain.MustAirportPair(origin, destination), testutil.SequentialSeats{})
	require.NoError(t, err)
	return f
}

// numbers returns the flight numbers in order.
func numbers(flights []*domain.Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.Number())
	}
	return out
}

func TestRouteIndex_OrdersByPrice(t *testing.T) {
	idx := NewRouteIndex()
	idx.Add(newIndexFlight(t, "C150", 150, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "A130", 130, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "B140", 140, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "L150", 150, "LAS", "LAX"))

	route := domain.MustAirportPair("CHI", "DFW")
	assert.Equal(t, []string{"A130", "B140", "C150"}, numbers(idx.FlightsForRoute(route)))
	assert.Equal(t, 2, idx.RouteCount())
	assert.Equal(t, 4, idx.Len())
}

func TestRouteIndex_ExactPairOnly(t *testing.T) {
	idx := NewRouteIndex()
	idx.Add(newIndexFlight(t, "K792", 130, "CHI", "DFW"))

	assert.Nil(t, idx.FlightsForRoute(domain.MustAirportPair("DFW", "CHI")), "no reverse-direction match")
	assert.False(t, idx.HasRoute(domain.MustAirportPair("DFW", "CHI")))
	assert.True(t, idx.HasRoute(domain.MustAirportPair("CHI", "DFW")))
}

func TestRouteIndex_SamePriceFlightsStayDistinct(t *testing.T) {
	idx := NewRouteIndex()
	idx.Add(newIndexFlight(t, "Z100", 100, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "M100", 100, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "A100", 100, "CHI", "DFW"))

	route := domain.MustAirportPair("CHI", "DFW")
	assert.Equal(t, []string{"A100", "M100", "Z100"}, numbers(idx.FlightsForRoute(route)),
		"ties are broken by flight number")
}

func TestRouteIndex_DuplicateFlightNumbers(t *testing.T) {
	idx := NewRouteIndex()
	first := newIndexFlight(t, "X1", 100, "CHI", "DFW")
	second := newIndexFlight(t, "X1", 100, "CHI", "DFW")

	assert.True(t, idx.Add(first))
	assert.False(t, idx.Add(second), "later registration does not claim the number")

	got, ok := idx.Flight("X1")
	require.True(t, ok)
	assert.Same(t, first, got)

	route := idx.FlightsForRoute(domain.MustAirportPair("CHI", "DFW"))
	require.Len(t, route, 2, "both flights stay in the route set")
	assert.Same(t, first, route[0], "registration order breaks full ties")
	assert.Same(t, second, route[1])

	assert.Equal(t, []*domain.Flight{first}, idx.Flights())
	assert.Equal(t, 1, idx.NumberCount())
	assert.Equal(t, 2, idx.Len())
}

func TestRouteIndex_AddSameFlightTwice(t *testing.T) {
	idx := NewRouteIndex()
	f := newIndexFlight(t, "K792", 130, "CHI", "DFW")

	assert.True(t, idx.Add(f))
	assert.False(t, idx.Add(f))
	assert.Equal(t, 1, idx.Len())
}

func TestRouteIndex_Reprice(t *testing.T) {
	idx := NewRouteIndex()
	k792 := newIndexFlight(t, "K792", 130, "CHI", "DFW")
	a792 := newIndexFlight(t, "A792", 140, "CHI", "DFW")
	idx.Add(k792)
	idx.Add(a792)

	route := domain.MustAirportPair("CHI", "DFW")
	require.Equal(t, []string{"K792", "A792"}, numbers(idx.FlightsForRoute(route)))

	idx.Reprice(a792, 120)
	assert.Equal(t, 120, a792.Price())
	assert.Equal(t, []string{"A792", "K792"}, numbers(idx.FlightsForRoute(route)))

	idx.Reprice(a792, 500)
	assert.Equal(t, []string{"K792", "A792"}, numbers(idx.FlightsForRoute(route)))
	assert.Equal(t, 2, idx.Len(), "reprice never duplicates or loses a flight")
}

func TestRouteIndex_RepriceIntoTie(t *testing.T) {
	idx := NewRouteIndex()
	a := newIndexFlight(t, "A1", 100, "CHI", "DFW")
	b := newIndexFlight(t, "B1", 200, "CHI", "DFW")
	idx.Add(a)
	idx.Add(b)

	idx.Reprice(b, 100)

	route := domain.MustAirportPair("CHI", "DFW")
	assert.Equal(t, []string{"A1", "B1"}, numbers(idx.FlightsForRoute(route)))
}

func TestRouteIndex_AscendDescend(t *testing.T) {
	idx := NewRouteIndex()
	idx.Add(newIndexFlight(t, "B", 140, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "A", 130, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "C", 150, "CHI", "DFW"))
	route := domain.MustAirportPair("CHI", "DFW")

	var up, down []string
	idx.Ascend(route, func(f *domain.Flight) bool {
		up = append(up, f.Number())
		return true
	})
	idx.Descend(route, func(f *domain.Flight) bool {
		down = append(down, f.Number())
		return len(down) < 2
	})

	assert.Equal(t, []string{"A", "B", "C"}, up)
	assert.Equal(t, []string{"C", "B"}, down, "iteration stops when fn returns false")

	called := false
	idx.Ascend(domain.MustAirportPair("LAS", "LAX"), func(*domain.Flight) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestRouteIndex_FlightsRegistrationOrder(t *testing.T) {
	idx := NewRouteIndex()
	idx.Add(newIndexFlight(t, "K792", 130, "CHI", "DFW"))
	idx.Add(newIndexFlight(t, "A124", 150, "LAS", "LAX"))
	idx.Add(newIndexFlight(t, "A792", 140, "CHI", "DFW"))

	assert.Equal(t, []string{"K792", "A124", "A792"}, numbers(idx.Flights()))
}
