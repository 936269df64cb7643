package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    Transaction
		wantErr bool
	}{
		{
			name:   "book passenger",
			fields: []string{"BookPassenger", "GeorgeWashington", "CHI", "DFW"},
			want:   Transaction{Kind: KindBookPassenger, Passenger: "GeorgeWashington", Origin: "CHI", Destination: "DFW"},
		},
		{
			name:   "cancel passenger",
			fields: []string{"CancelPassenger", "GeorgeWashington", "LAS", "LAX"},
			want:   Transaction{Kind: KindCancelPassenger, Passenger: "GeorgeWashington", Origin: "LAS", Destination: "LAX"},
		},
		{
			name:   "change price",
			fields: []string{"ChangePrice", "A792", "120"},
			want:   Transaction{Kind: KindChangePrice, FlightNumber: "A792", NewPrice: 120},
		},
		{
			name:   "negative price is still an integer",
			fields: []string{"ChangePrice", "A792", "-5"},
			want:   Transaction{Kind: KindChangePrice, FlightNumber: "A792", NewPrice: -5},
		},
		{
			name:   "unknown kind passes through",
			fields: []string{"Refund", "x"},
			want:   Transaction{Kind: "Refund"},
		},
		{name: "empty record", fields: nil, wantErr: true},
		{name: "empty kind", fields: []string{""}, wantErr: true},
		{name: "book missing destination", fields: []string{"BookPassenger", "a", "CHI"}, wantErr: true},
		{name: "cancel with extra field", fields: []string{"CancelPassenger", "a", "CHI", "DFW", "x"}, wantErr: true},
		{name: "change price missing price", fields: []string{"ChangePrice", "A792"}, wantErr: true},
		{name: "change price not a number", fields: []string{"ChangePrice", "A792", "12.5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransaction(tt.fields)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedTransaction))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionKind_IsValid(t *testing.T) {
	assert.True(t, KindBookPassenger.IsValid())
	assert.True(t, KindChangePrice.IsValid())
	assert.True(t, KindCancelPassenger.IsValid())
	assert.False(t, TransactionKind("bookpassenger").IsValid())
	assert.False(t, TransactionKind("").IsValid())
}
