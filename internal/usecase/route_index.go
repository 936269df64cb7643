package usecase

import (
	"github.com/google/btree"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// routeTreeDegree is the btree node degree used for per-route flight sets.
// Routes rarely hold more than a handful of flights.
const routeTreeDegree = 8

// RouteIndex keeps every flight in a price-ordered set per route and the first
// flight registered under each flight number.
//
// Ordering is price ascending, then flight number, then registration order.
// That is a strict total order, so distinct flights with the same price (or even
// the same number, which the catalog allows) never replace each other in a set.
//
// A flight's price must only change through Reprice; changing it directly
// breaks the ordering and makes the flight impossible to remove.
type RouteIndex struct {
	routes     map[domain.AirportPair]*btree.BTreeG[*domain.Flight]
	byNumber   map[string]*domain.Flight
	registered []*domain.Flight
	seq        map[*domain.Flight]uint64
	nextSeq    uint64
}

// NewRouteIndex creates an empty index.
func NewRouteIndex() *RouteIndex {
	return &RouteIndex{
		routes:   make(map[domain.AirportPair]*btree.BTreeG[*domain.Flight]),
		byNumber: make(map[string]*domain.Flight),
		seq:      make(map[*domain.Flight]uint64),
	}
}

// less orders flights within a route.
func (idx *RouteIndex) less(a, b *domain.Flight) bool {
	if a.Price() != b.Price() {
		return a.Price() < b.Price()
	}
	if a.Number() != b.Number() {
		return a.Number() < b.Number()
	}
	return idx.seq[a] < idx.seq[b]
}

// Add inserts the flight into its route set. It returns true when the flight
// also claimed its flight number; later flights with a known number only join
// the route set.
func (idx *RouteIndex) Add(f *domain.Flight) bool {
	if _, known := idx.seq[f]; known {
		return false
	}
	idx.seq[f] = idx.nextSeq
	idx.nextSeq++

	tree, ok := idx.routes[f.Route()]
	if !ok {
		tree = btree.NewG[*domain.Flight](routeTreeDegree, idx.less)
		idx.routes[f.Route()] = tree
	}
	tree.ReplaceOrInsert(f)

	if _, taken := idx.byNumber[f.Number()]; taken {
		return false
	}
	idx.byNumber[f.Number()] = f
	idx.registered = append(idx.registered, f)
	return true
}

// Flight looks up a flight by number.
func (idx *RouteIndex) Flight(number string) (*domain.Flight, bool) {
	f, ok := idx.byNumber[number]
	return f, ok
}

// HasRoute reports whether any flight serves the exact pair.
func (idx *RouteIndex) HasRoute(pair domain.AirportPair) bool {
	tree, ok := idx.routes[pair]
	return ok && tree.Len() > 0
}

// FlightsForRoute returns the route's flights cheapest first.
// The slice is a snapshot; nil when the route is unknown.
func (idx *RouteIndex) FlightsForRoute(pair domain.AirportPair) []*domain.Flight {
	tree, ok := idx.routes[pair]
	if !ok {
		return nil
	}
	out := make([]*domain.Flight, 0, tree.Len())
	tree.Ascend(func(f *domain.Flight) bool {
		out = append(out, f)
		return true
	})
	return out
}

// Ascend calls fn for each flight on the route, cheapest first, until fn returns false.
func (idx *RouteIndex) Ascend(pair domain.AirportPair, fn func(*domain.Flight) bool) {
	if tree, ok := idx.routes[pair]; ok {
		tree.Ascend(btree.ItemIteratorG[*domain.Flight](fn))
	}
}

// Descend calls fn for each flight on the route, most expensive first, until fn returns false.
func (idx *RouteIndex) Descend(pair domain.AirportPair, fn func(*domain.Flight) bool) {
	if tree, ok := idx.routes[pair]; ok {
		tree.Descend(btree.ItemIteratorG[*domain.Flight](fn))
	}
}

// Reprice changes the flight's price and restores the route ordering.
// The flight is removed under its old price and reinserted under the new one.
func (idx *RouteIndex) Reprice(f *domain.Flight, price int) {
	tree, ok := idx.routes[f.Route()]
	if !ok {
		f.ChangePrice(price)
		return
	}
	tree.Delete(f)
	f.ChangePrice(price)
	tree.ReplaceOrInsert(f)
}

// Flights returns the flights that own their flight number, in registration order.
func (idx *RouteIndex) Flights() []*domain.Flight {
	out := make([]*domain.Flight, len(idx.registered))
	copy(out, idx.registered)
	return out
}

// Len returns the number of flights in route sets, duplicates included.
func (idx *RouteIndex) Len() int {
	return len(idx.seq)
}

// NumberCount returns the number of flights that own their flight number.
func (idx *RouteIndex) NumberCount() int {
	return len(idx.registered)
}

// RouteCount returns the number of distinct routes.
func (idx *RouteIndex) RouteCount() int {
	return len(idx.routes)
}
