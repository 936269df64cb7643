// Package transaction streams ledger transactions from a text source, one
// comma-separated record per line.
package transaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/catalog"
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// Reader implements domain.TransactionSource over an io.Reader.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// Ensure Reader implements domain.TransactionSource.
var _ domain.TransactionSource = (*Reader)(nil)

// NewReader creates a Reader that parses records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Open opens the transaction file at path. The caller must Close it.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions: %w", err)
	}

	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Next returns the next transaction. Blank lines are skipped. A record that
// cannot be parsed yields an error wrapping domain.ErrMalformedTransaction
// and the reader moves on to the following line.
func (r *Reader) Next(ctx context.Context) (domain.Transaction, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Transaction{}, err
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return domain.Transaction{}, fmt.Errorf("read transactions: %w", err)
			}
			return domain.Transaction{}, io.EOF
		}
		r.line++

		fields, ok := catalog.SplitFields(r.scanner.Text())
		if !ok {
			continue
		}

		tx, err := domain.ParseTransaction(fields)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("transaction line %d: %w", r.line, err)
		}
		tx.Line = r.line
		return tx, nil
	}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
