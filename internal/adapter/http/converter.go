package http

import (
	"strings"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/usecase"
)

// TransactionResponse reports what a submitted transaction did.
type TransactionResponse struct {
	Kind         string `json:"kind" example:"BookPassenger"`
	Applied      bool   `json:"applied" example:"true"`
	FlightNumber string `json:"flightNumber,omitempty" example:"K792"`
	SeatNumber   int    `json:"seatNumber,omitempty" example:"14"`
	Price        int    `json:"price,omitempty" example:"130"`

	// Reason explains why the ledger left the transaction unapplied
	Reason string `json:"reason,omitempty" example:"route not found: LAS-LAX"`
}

// RouteFlightsResponse lists a route's flights, cheapest first.
type RouteFlightsResponse struct {
	Origin      string                 `json:"origin" example:"CHI"`
	Destination string                 `json:"destination" example:"DFW"`
	Flights     []domain.FlightSummary `json:"flights"`
}

// ToDomainTransaction converts a validated request to a domain.Transaction.
// Whitespace is stripped from every field, as in transaction files.
func ToDomainTransaction(req *SubmitTransactionRequest) domain.Transaction {
	tx := domain.Transaction{
		Kind:         domain.TransactionKind(req.Kind),
		Passenger:    stripSpace(req.Passenger),
		Origin:       stripSpace(req.Origin),
		Destination:  stripSpace(req.Destination),
		FlightNumber: stripSpace(req.FlightNumber),
	}
	if req.NewPrice != nil {
		tx.NewPrice = *req.NewPrice
	}
	return tx
}

// ToTransactionResponse converts an engine Outcome to its API form.
func ToTransactionResponse(out usecase.Outcome) TransactionResponse {
	resp := TransactionResponse{
		Kind:         string(out.Kind),
		Applied:      out.Applied,
		FlightNumber: out.FlightNumber,
		SeatNumber:   out.SeatNumber,
		Price:        out.Price,
	}
	if out.Reason != nil {
		resp.Reason = out.Reason.Error()
	}
	return resp
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
