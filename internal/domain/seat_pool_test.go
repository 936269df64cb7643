package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/test/testutil"
)

func TestSeatPool_IssuesEverySeatOnce(t *testing.T) {
	const capacity = 54
	pool := domain.NewSeatPool(capacity, rand.New(rand.NewPCG(1, 2)))

	seen := make(map[int]bool, capacity)
	for i := 0; i < capacity; i++ {
		seat, ok := pool.Issue()
		require.True(t, ok)
		assert.GreaterOrEqual(t, seat, 1)
		assert.LessOrEqual(t, seat, capacity)
		assert.False(t, seen[seat], "seat %d issued twice", seat)
		seen[seat] = true
		assert.Equal(t, capacity-i-1, pool.Available())
	}

	_, ok := pool.Issue()
	assert.False(t, ok, "empty pool must report no seat")
	assert.Equal(t, 0, pool.Available())
}

func TestSeatPool_SequentialSeats(t *testing.T) {
	pool := domain.NewSeatPool(3, testutil.SequentialSeats{})

	for want := 1; want <= 3; want++ {
		seat, ok := pool.Issue()
		require.True(t, ok)
		assert.Equal(t, want, seat)
	}
}

func TestSeatPool_UsesRandomizerBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := domain.NewMockSeatRandomizer(ctrl)

	gomock.InOrder(
		rng.EXPECT().IntN(4).Return(0),
		rng.EXPECT().IntN(3).Return(0),
	)

	pool := domain.NewSeatPool(4, rng)

	// free starts as [4 3 2 1]; index 0 is seat 4, then seat 1 is swapped in
	seat, ok := pool.Issue()
	require.True(t, ok)
	assert.Equal(t, 4, seat)

	seat, ok = pool.Issue()
	require.True(t, ok)
	assert.Equal(t, 1, seat)
	assert.Equal(t, 2, pool.Available())
}

func TestSeatPool_Release(t *testing.T) {
	tests := []struct {
		name          string
		release       []int
		wantAvailable int
	}{
		{"released seat returns to pool", []int{1}, 3},
		{"double release does not duplicate", []int{1, 1}, 3},
		{"release of never-issued seat is ignored", []int{4}, 2},
		{"release below range is ignored", []int{0}, 2},
		{"release above range is ignored", []int{5}, 2},
		{"release both issued seats", []int{2, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := domain.NewSeatPool(4, testutil.SequentialSeats{})
			_, _ = pool.Issue() // 1
			_, _ = pool.Issue() // 2
			require.Equal(t, 2, pool.Available())

			for _, seat := range tt.release {
				pool.Release(seat)
			}
			assert.Equal(t, tt.wantAvailable, pool.Available())
			assert.Equal(t, 4, pool.Capacity())
		})
	}
}

func TestSeatPool_ReleasedSeatIsReissued(t *testing.T) {
	pool := domain.NewSeatPool(1, testutil.SequentialSeats{})

	seat, ok := pool.Issue()
	require.True(t, ok)
	assert.False(t, pool.IsAvailable(seat))

	pool.Release(seat)
	assert.True(t, pool.IsAvailable(seat))

	again, ok := pool.Issue()
	require.True(t, ok)
	assert.Equal(t, seat, again)
}
