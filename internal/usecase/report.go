package usecase

import (
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// KindStats counts outcomes for one transaction kind.
type KindStats struct {
	Applied int `json:"applied"`
	Dropped int `json:"dropped"`
}

// ReplayStats summarizes a Replay run.
type ReplayStats struct {
	Processed int                                  `json:"processed"`
	Applied   int                                  `json:"applied"`
	Dropped   int                                  `json:"dropped"`
	Malformed int                                  `json:"malformed"`
	ByKind    map[domain.TransactionKind]KindStats `json:"byKind"`
}

func newReplayStats() ReplayStats {
	return ReplayStats{ByKind: make(map[domain.TransactionKind]KindStats)}
}

func (s *ReplayStats) add(out Outcome) {
	s.Processed++

	k := s.ByKind[out.Kind]
	if out.Applied {
		s.Applied++
		k.Applied++
	} else {
		s.Dropped++
		k.Dropped++
	}
	s.ByKind[out.Kind] = k
}

// Report implements ReservationEngine.Report.
//
// Flights appear in registration order; only the first flight registered
// under a number is reported.
func (e *reservationEngine) Report() domain.SettlementReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	flights := e.index.Flights()
	report := domain.SettlementReport{
		RunID:       e.runID,
		GeneratedAt: e.clock.Now(),
		Flights:     make([]domain.FlightSummary, 0, len(flights)),
	}

	for _, f := range flights {
		summary := f.Summarize()
		report.Flights = append(report.Flights, summary)
		report.TotalSeatsSold += summary.SoldSeats
		report.TotalRevenue += summary.Revenue
	}

	e.metrics.ObserveSettlement(report.TotalSeatsSold, report.TotalRevenue)

	return report
}
