package domain

import (
	"context"
	"fmt"
	"strconv"
)

//go:generate mockgen -source=transaction.go -destination=mock_transaction_source.go -package=domain

// TransactionKind names the operation a transaction performs.
type TransactionKind string

// Transaction kinds as they appear in the first field of a transaction record.
const (
	KindBookPassenger   TransactionKind = "BookPassenger"
	KindChangePrice     TransactionKind = "ChangePrice"
	KindCancelPassenger TransactionKind = "CancelPassenger"
)

// IsValid reports whether the kind is one the ledger understands.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindBookPassenger, KindChangePrice, KindCancelPassenger:
		return true
	default:
		return false
	}
}

// Transaction is one parsed ledger instruction.
//
// BookPassenger and CancelPassenger use Passenger, Origin and Destination.
// ChangePrice uses FlightNumber and NewPrice.
type Transaction struct {
	Kind         TransactionKind `json:"kind"`
	Passenger    string          `json:"passenger,omitempty"`
	Origin       string          `json:"origin,omitempty"`
	Destination  string          `json:"destination,omitempty"`
	FlightNumber string          `json:"flightNumber,omitempty"`
	NewPrice     int             `json:"newPrice,omitempty"`

	// Line is the 1-based position in the source, 0 when not read from a file
	Line int `json:"-"`
}

// Number of fields (kind included) per transaction kind.
const (
	bookFieldCount   = 4
	priceFieldCount  = 3
	cancelFieldCount = 4
)

// ParseTransaction builds a Transaction from already split, whitespace-free fields.
// Unknown kinds are returned as-is without error so the ledger can ignore them.
func ParseTransaction(fields []string) (Transaction, error) {
	if len(fields) == 0 || fields[0] == "" {
		return Transaction{}, fmt.Errorf("%w: empty record", ErrMalformedTransaction)
	}

	kind := TransactionKind(fields[0])
	switch kind {
	case KindBookPassenger, KindCancelPassenger:
		if len(fields) != bookFieldCount {
			return Transaction{}, fmt.Errorf("%w: %s expects %d fields, got %d", ErrMalformedTransaction, kind, bookFieldCount, len(fields))
		}
		return Transaction{
			Kind:        kind,
			Passenger:   fields[1],
			Origin:      fields[2],
			Destination: fields[3],
		}, nil

	case KindChangePrice:
		if len(fields) != priceFieldCount {
			return Transaction{}, fmt.Errorf("%w: %s expects %d fields, got %d", ErrMalformedTransaction, kind, priceFieldCount, len(fields))
		}
		price, err := strconv.Atoi(fields[2])
		if err != nil {
			return Transaction{}, fmt.Errorf("%w: price %q is not an integer", ErrMalformedTransaction, fields[2])
		}
		return Transaction{
			Kind:         kind,
			FlightNumber: fields[1],
			NewPrice:     price,
		}, nil

	default:
		return Transaction{Kind: kind}, nil
	}
}

// TransactionSource yields transactions in source order.
type TransactionSource interface {
	// Next returns the next transaction, or io.EOF when the source is exhausted.
	// Errors wrapping ErrMalformedTransaction describe one bad record; the
	// source remains usable. Any other error is fatal.
	Next(ctx context.Context) (Transaction, error)
}

// FlightRecord is one catalog entry before it becomes a Flight.
type FlightRecord struct {
	Number      string `json:"flightNumber"`
	Seats       int    `json:"seats"`
	Price       int    `json:"price"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Line is the 1-based position in the catalog, 0 when not read from a file
	Line int `json:"-"`
}
