// Package mock provides test doubles for the seat ledger.
// These doubles are meant for integration tests that need scripted input
// with configurable errors and delays.
package mock

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

type step struct {
	tx  domain.Transaction
	err error
}

// Source is a scripted implementation of domain.TransactionSource.
// It returns its steps in order and io.EOF once they run out.
type Source struct {
	steps     []step
	delay     time.Duration
	pos       int
	callCount int
	mu        sync.Mutex
}

// NewSource creates a source that yields the given transactions.
func NewSource(txs ...domain.Transaction) *Source {
	s := &Source{}
	return s.WithTransactions(txs...)
}

// WithTransactions appends transactions to the script.
func (s *Source) WithTransactions(txs ...domain.Transaction) *Source {
	for _, tx := range txs {
		s.steps = append(s.steps, step{tx: tx})
	}
	return s
}

// WithError appends an error to the script. Wrap domain.ErrMalformedTransaction
// to simulate a bad record; any other error aborts a replay.
func (s *Source) WithError(err error) *Source {
	s.steps = append(s.steps, step{err: err})
	return s
}

// WithDelay makes every Next call wait the given duration first.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Next implements domain.TransactionSource.Next.
func (s *Source) Next(ctx context.Context) (domain.Transaction, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Transaction{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.steps) {
		return domain.Transaction{}, io.EOF
	}
	st := s.steps[s.pos]
	s.pos++
	if st.err != nil {
		return domain.Transaction{}, st.err
	}

	tx := st.tx
	tx.Line = s.pos
	return tx, nil
}

// CallCount returns the number of times Next was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset rewinds the script and clears the call count.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	s.callCount = 0
}

// Ensure Source implements domain.TransactionSource at compile time.
var _ domain.TransactionSource = (*Source)(nil)

// Book returns a BookPassenger transaction.
func Book(passenger, origin, destination string) domain.Transaction {
	return domain.Transaction{Kind: domain.KindBookPassenger, Passenger: passenger, Origin: origin, Destination: destination}
}

// Cancel returns a CancelPassenger transaction.
func Cancel(passenger, origin, destination string) domain.Transaction {
	return domain.Transaction{Kind: domain.KindCancelPassenger, Passenger: passenger, Origin: origin, Destination: destination}
}

// ChangePrice returns a ChangePrice transaction.
func ChangePrice(flightNumber string, price int) domain.Transaction {
	return domain.Transaction{Kind: domain.KindChangePrice, FlightNumber: flightNumber, NewPrice: price}
}

// SampleCatalog returns count flights on one route. Flight i is numbered
// with the given prefix, has seats seats and costs basePrice+10*i.
func SampleCatalog(prefix string, count, seats, basePrice int, origin, destination string) []domain.FlightRecord {
	records := make([]domain.FlightRecord, count)
	for i := range records {
		records[i] = domain.FlightRecord{
			Number:      fmt.Sprintf("%s%03d", prefix, i+1),
			Seats:       seats,
			Price:       basePrice + 10*i,
			Origin:      origin,
			Destination: destination,
			Line:        i + 1,
		}
	}
	return records
}

// Passengers returns n distinct passenger names.
func Passengers(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Passenger%04d", i+1)
	}
	return names
}
