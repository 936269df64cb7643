package domain

//go:generate mockgen -source=seat_pool.go -destination=mock_seat_randomizer.go -package=domain

// SeatRandomizer picks which free seat is issued next.
// *math/rand/v2.Rand satisfies it.
type SeatRandomizer interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// SeatPool tracks the unassigned seat numbers 1..capacity of one flight.
//
// Every seat number is either in the pool or held by a reservation, never both.
// Removal is O(1): free holds the available seats and index maps a seat to its
// position in free.
type SeatPool struct {
	capacity int
	free     []int
	index    map[int]int
	rng      SeatRandomizer
}

// NewSeatPool creates a full pool of seats numbered 1..capacity.
// Seats are stored highest first, so a randomizer that always picks the last
// index hands out 1, 2, 3, ... in order.
func NewSeatPool(capacity int, rng SeatRandomizer) *SeatPool {
	p := &SeatPool{
		capacity: capacity,
		free:     make([]int, 0, capacity),
		index:    make(map[int]int, capacity),
		rng:      rng,
	}
	for seat := capacity; seat >= 1; seat-- {
		p.index[seat] = len(p.free)
		p.free = append(p.free, seat)
	}
	return p
}

// Issue removes a uniformly chosen seat from the pool and returns it.
// ok is false when the pool is empty.
func (p *SeatPool) Issue() (seat int, ok bool) {
	if len(p.free) == 0 {
		return 0, false
	}

	i := p.rng.IntN(len(p.free))
	seat = p.free[i]

	last := len(p.free) - 1
	p.free[i] = p.free[last]
	p.index[p.free[i]] = i
	p.free = p.free[:last]
	delete(p.index, seat)

	return seat, true
}

// Release returns a seat to the pool. Seats that are already free or that do
// not belong to this flight are ignored.
func (p *SeatPool) Release(seat int) {
	if seat < 1 || seat > p.capacity {
		return
	}
	if _, free := p.index[seat]; free {
		return
	}
	p.index[seat] = len(p.free)
	p.free = append(p.free, seat)
}

// Available returns the number of unassigned seats.
func (p *SeatPool) Available() int {
	return len(p.free)
}

// Capacity returns the total number of seats managed by the pool.
func (p *SeatPool) Capacity() int {
	return p.capacity
}

// IsAvailable reports whether the seat is currently unassigned.
func (p *SeatPool) IsAvailable(seat int) bool {
	_, ok := p.index[seat]
	return ok
}
