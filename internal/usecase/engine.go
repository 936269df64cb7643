// Package usecase contains the reservation engine: it owns the route index,
// applies booking, pricing and cancellation transactions in order, and builds
// the settlement report.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/logger"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/timeutil"
)

// ReservationEngine defines the ledger operations.
type ReservationEngine interface {
	// Apply dispatches a single transaction. Unresolvable transactions are
	// no-ops; their reason is reported in the Outcome and, in strict mode,
	// also returned as the error.
	Apply(tx domain.Transaction) (Outcome, error)

	// Replay applies every transaction from src in order until io.EOF.
	// Read failures abort the replay and are returned.
	Replay(ctx context.Context, src domain.TransactionSource) (ReplayStats, error)

	// Report builds the settlement report. It does not change ledger state.
	Report() domain.SettlementReport

	// Flight returns the summary of the flight registered under number.
	Flight(number string) (domain.FlightSummary, bool)

	// RouteFlights returns summaries of the route's flights, cheapest first.
	RouteFlights(origin, destination string) ([]domain.FlightSummary, error)

	// FlightCount returns the number of flights addressable by number.
	FlightCount() int
}

// Config contains configuration options for the engine.
type Config struct {
	// Strict turns dropped transactions into errors and stops Replay on the first one.
	Strict bool

	// Randomizer picks seats; nil means a randomly seeded PCG source.
	Randomizer domain.SeatRandomizer

	// Clock stamps reports; nil means the system clock.
	Clock timeutil.Clock

	// Logger receives drop and replay events; nil disables logging.
	Logger *logger.Logger

	// Metrics is optional.
	Metrics *metrics.Metrics

	// RunID is copied into every report.
	RunID string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Strict:     false,
		Randomizer: NewSeatRandomizer(0),
		Clock:      timeutil.NewRealClock(),
		Logger:     logger.Nop(),
	}
}

// NewSeatRandomizer returns a PCG-backed randomizer. A zero seed picks a random one.
func NewSeatRandomizer(seed uint64) domain.SeatRandomizer {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// reservationEngine implements ReservationEngine over a RouteIndex.
// One mutex serializes every operation; RouteIndex and Flight do no locking.
type reservationEngine struct {
	mu      sync.Mutex
	index   *RouteIndex
	strict  bool
	clock   timeutil.Clock
	log     *logger.Logger
	metrics *metrics.Metrics
	runID   string
}

// NewReservationEngine builds the route index from catalog records.
// An invalid record (bad airport code, no seats) fails the whole load.
// If config is nil, defaults are used.
func NewReservationEngine(records []domain.FlightRecord, config *Config) (ReservationEngine, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg.Strict = config.Strict
		cfg.Metrics = config.Metrics
		cfg.RunID = config.RunID
		if config.Randomizer != nil {
			cfg.Randomizer = config.Randomizer
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	e := &reservationEngine{
		index:   NewRouteIndex(),
		strict:  cfg.Strict,
		clock:   cfg.Clock,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
		runID:   cfg.RunID,
	}

	for _, rec := range records {
		if err := e.addFlight(rec, cfg.Randomizer); err != nil {
			return nil, err
		}
	}

	e.metrics.ObserveCatalog(e.index.Len())
	e.log.Info().
		Int("flights", e.index.Len()).
		Int("routes", e.index.RouteCount()).
		Msg("Catalog loaded")

	return e, nil
}

func (e *reservationEngine) addFlight(rec domain.FlightRecord, rng domain.SeatRandomizer) error {
	route, err := domain.NewAirportPair(rec.Origin, rec.Destination)
	if err != nil {
		return fmt.Errorf("catalog line %d: %w", rec.Line, err)
	}
	f, err := domain.NewFlight(rec.Number, rec.Seats, rec.Price, route, rng)
	if err != nil {
		return fmt.Errorf("catalog line %d: %w", rec.Line, err)
	}

	if !e.index.Add(f) {
		e.log.Warn().
			Str("flight", rec.Number).
			Int("line", rec.Line).
			Msg("Duplicate flight number; only the first is addressable by number")
	}
	return nil
}

// Apply implements ReservationEngine.Apply.
func (e *reservationEngine) Apply(tx domain.Transaction) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.apply(tx)
}

func (e *reservationEngine) apply(tx domain.Transaction) (Outcome, error) {
	var (
		out Outcome
		err error
	)

	switch tx.Kind {
	case domain.KindBookPassenger:
		out, err = e.book(tx)
	case domain.KindChangePrice:
		out = e.reprice(tx)
	case domain.KindCancelPassenger:
		out = e.cancel(tx)
	default:
		out = dropped(tx, fmt.Errorf("%w: %q", domain.ErrUnknownTransaction, tx.Kind))
	}
	if err != nil {
		return out, err
	}

	e.record(tx, out)

	if !out.Applied && e.strict {
		return out, out.Reason
	}
	return out, nil
}

// record logs and counts one dispatched transaction.
func (e *reservationEngine) record(tx domain.Transaction, out Outcome) {
	// Unknown kinds share one label so junk input cannot grow the series set.
	kind := ""
	if tx.Kind.IsValid() {
		kind = string(tx.Kind)
	}

	if out.Applied {
		e.metrics.ObserveTransaction(kind, metrics.OutcomeApplied)
		return
	}

	e.metrics.ObserveTransaction(kind, metrics.OutcomeDropped)
	e.log.WithTransaction(string(tx.Kind), tx.Passenger, routeLabel(tx), tx.FlightNumber, tx.Line).
		Debug().
		Err(out.Reason).
		Msg("Transaction dropped")
}

// Replay implements ReservationEngine.Replay.
func (e *reservationEngine) Replay(ctx context.Context, src domain.TransactionSource) (ReplayStats, error) {
	stats := newReplayStats()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		tx, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, domain.ErrMalformedTransaction) {
				return stats, fmt.Errorf("read transaction: %w", err)
			}

			stats.Processed++
			stats.Malformed++
			e.metrics.ObserveTransaction("", metrics.OutcomeMalformed)
			e.log.Debug().Err(err).Msg("Malformed transaction skipped")
			if e.strict {
				return stats, err
			}
			continue
		}

		out, err := e.Apply(tx)
		stats.add(out)
		if err != nil {
			return stats, err
		}
	}

	e.log.Info().
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("dropped", stats.Dropped).
		Int("malformed", stats.Malformed).
		Msg("Transactions replayed")

	return stats, nil
}

// Flight implements ReservationEngine.Flight.
func (e *reservationEngine) Flight(number string) (domain.FlightSummary, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, ok := e.index.Flight(number)
	if !ok {
		return domain.FlightSummary{}, false
	}
	return f.Summarize(), true
}

// RouteFlights implements ReservationEngine.RouteFlights.
func (e *reservationEngine) RouteFlights(origin, destination string) ([]domain.FlightSummary, error) {
	route, err := domain.NewAirportPair(origin, destination)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	flights := e.index.FlightsForRoute(route)
	if len(flights) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrRouteNotFound, route)
	}

	out := make([]domain.FlightSummary, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.Summarize())
	}
	return out, nil
}

// FlightCount implements ReservationEngine.FlightCount.
func (e *reservationEngine) FlightCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.index.NumberCount()
}

func routeLabel(tx domain.Transaction) string {
	if tx.Origin == "" && tx.Destination == "" {
		return ""
	}
	return tx.Origin + "-" + tx.Destination
}
