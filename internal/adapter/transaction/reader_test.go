package transaction

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/test/testutil"
)

// drain reads r until io.EOF, collecting transactions and malformed errors.
func drain(t *testing.T, r *Reader) ([]domain.Transaction, []error) {
	t.Helper()

	var (
		txs  []domain.Transaction
		errs []error
	)
	for {
		tx, err := r.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return txs, errs
		}
		if err != nil {
			require.True(t, errors.Is(err, domain.ErrMalformedTransaction), "unexpected error: %v", err)
			errs = append(errs, err)
			continue
		}
		txs = append(txs, tx)
	}
}

func TestReader_Next(t *testing.T) {
	input := strings.Join([]string{
		"BookPassenger, George Washington, CHI, DFW",
		"",
		"ChangePrice, A792, 120",
		"CancelPassenger,GeorgeWashington,CHI,DFW",
	}, "\n")

	txs, errs := drain(t, NewReader(strings.NewReader(input)))
	require.Empty(t, errs)
	require.Len(t, txs, 3)

	assert.Equal(t, domain.Transaction{
		Kind:        domain.KindBookPassenger,
		Passenger:   "GeorgeWashington",
		Origin:      "CHI",
		Destination: "DFW",
		Line:        1,
	}, txs[0])
	assert.Equal(t, domain.Transaction{
		Kind:         domain.KindChangePrice,
		FlightNumber: "A792",
		NewPrice:     120,
		Line:         3,
	}, txs[1])
	assert.Equal(t, domain.KindCancelPassenger, txs[2].Kind)
	assert.Equal(t, 4, txs[2].Line)
}

func TestReader_MalformedRecordsDoNotStopTheStream(t *testing.T) {
	input := strings.Join([]string{
		"BookPassenger,Alice,CHI",
		"ChangePrice,A792,cheap",
		"BookPassenger,Bob,CHI,DFW",
	}, "\n")

	r := NewReader(strings.NewReader(input))
	txs, errs := drain(t, r)

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "transaction line 1")
	assert.Contains(t, errs[1].Error(), "transaction line 2")

	require.Len(t, txs, 1)
	assert.Equal(t, "Bob", txs[0].Passenger)
	assert.Equal(t, 3, r.Line())
}

func TestReader_UnknownKindPassesThrough(t *testing.T) {
	txs, errs := drain(t, NewReader(strings.NewReader("Upgrade,Alice,CHI,DFW")))
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TransactionKind("Upgrade"), txs[0].Kind)
	assert.False(t, txs[0].Kind.IsValid())
}

func TestReader_EOFIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	_, err := r.Next(context.Background())
	assert.Equal(t, io.EOF, err)
	_, err = r.Next(context.Background())
	assert.Equal(t, io.EOF, err)
}

func TestReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(strings.NewReader("BookPassenger,Alice,CHI,DFW")).Next(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOpen(t *testing.T) {
	path := testutil.WriteTempFile(t, "transactions.txt",
		"BookPassenger,Alice,CHI,DFW",
		"BookPassenger,Bob,CHI,DFW",
	)

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, r.Close()) }()

	txs, errs := drain(t, r)
	assert.Empty(t, errs)
	assert.Len(t, txs, 2)
}

func TestOpen_Testdata(t *testing.T) {
	r, err := Open(testutil.TestDataPath(t, "transactions.txt"))
	require.NoError(t, err)
	defer r.Close()

	txs, _ := drain(t, r)
	assert.NotEmpty(t, txs)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(t.TempDir() + "/missing.txt")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReader_CloseWithoutFile(t *testing.T) {
	assert.NoError(t, NewReader(strings.NewReader("")).Close())
}
