package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-ledger/seat-inventory-ledger/internal/config"
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/timeutil"
	"github.com/flight-ledger/seat-inventory-ledger/test/testutil"
)

func testOptions() Options {
	return Options{
		RunID:      "test-run",
		Clock:      timeutil.NewMockClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)),
		Randomizer: testutil.SequentialSeats{},
	}
}

func ledgerConfig(t *testing.T, catalogLines, txLines []string) config.LedgerConfig {
	t.Helper()
	return config.LedgerConfig{
		CatalogPath:      testutil.WriteTempFile(t, "catalog.txt", catalogLines...),
		TransactionsPath: testutil.WriteTempFile(t, "transactions.txt", txLines...),
		OutputPath:       filepath.Join(t.TempDir(), "out", "output.txt"),
		OutputFormat:     "text",
	}
}

func TestRunBatch_WritesReport(t *testing.T) {
	cfg := ledgerConfig(t,
		[]string{"K792, 26, 130, CHI, DFW", "A792, 56, 140, CHI, DFW"},
		[]string{
			"BookPassenger, George Washington, CHI, DFW",
			"ChangePrice, A792, 120",
			"BookPassenger, John Adams, CHI, DFW",
			"CancelPassenger, Nobody, CHI, DFW",
		},
	)

	result, err := RunBatch(context.Background(), cfg, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.Processed)
	assert.Equal(t, 3, result.Stats.Applied)
	assert.Equal(t, 2, result.Report.TotalSeatsSold)
	assert.Equal(t, int64(250), result.Report.TotalRevenue)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "Flight# K792 Number of seats available: 25\n"))
	assert.Contains(t, out, "Flight# A792 Number of seats available: 55\n")
	assert.True(t, strings.HasSuffix(out, "System's summary\nTotal seats sold: 2\nTotal revenue: $250"))
}

func TestRunBatch_JSONOutput(t *testing.T) {
	cfg := ledgerConfig(t, []string{"K792,26,130,CHI,DFW"}, []string{"BookPassenger,Alice,CHI,DFW"})
	cfg.OutputFormat = "json"

	_, err := RunBatch(context.Background(), cfg, testOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"runId": "test-run"`)
	assert.Contains(t, string(data), `"totalRevenue": 130`)
}

// sibling names a file that does not exist next to path.
func sibling(path string) string {
	return filepath.Join(filepath.Dir(path), "nope.txt")
}

func TestRunBatch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.LedgerConfig)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing catalog",
			mutate:  func(c *config.LedgerConfig) { c.CatalogPath = sibling(c.CatalogPath) },
			wantErr: os.ErrNotExist,
			wantMsg: "load catalog",
		},
		{
			name:    "missing transactions",
			mutate:  func(c *config.LedgerConfig) { c.TransactionsPath = sibling(c.TransactionsPath) },
			wantErr: os.ErrNotExist,
			wantMsg: "replay transactions",
		},
		{
			name:    "strict mode drop",
			mutate:  func(c *config.LedgerConfig) { c.Strict = true },
			wantErr: domain.ErrRouteNotFound,
			wantMsg: "replay transactions",
		},
		{
			name:    "unknown format",
			mutate:  func(c *config.LedgerConfig) { c.OutputFormat = "xml" },
			wantMsg: "unsupported report format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ledgerConfig(t, []string{"K792,26,130,CHI,DFW"}, []string{"BookPassenger,Alice,LAS,LAX"})
			tt.mutate(&cfg)

			_, err := RunBatch(context.Background(), cfg, testOptions())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, statErr := os.Stat(cfg.OutputPath)
			assert.True(t, errors.Is(statErr, os.ErrNotExist), "no report on failure")
		})
	}
}

func TestRunBatch_InvalidCatalog(t *testing.T) {
	cfg := ledgerConfig(t, []string{"K792,26,130,CHICAGO,DFW"}, nil)

	_, err := RunBatch(context.Background(), cfg, testOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidAirportCode))
	assert.Contains(t, err.Error(), "catalog line 1")
}

func TestNewEngine_SeededSeatsAreReproducible(t *testing.T) {
	cfg := ledgerConfig(t, []string{"K792,200,130,CHI,DFW"}, nil)
	cfg.SeatSeed = 7

	seats := func() []int {
		engine, err := NewEngine(cfg, Options{})
		require.NoError(t, err)

		var out []int
		for _, name := range []string{"a", "b", "c", "d"} {
			o, err := engine.Apply(domain.Transaction{Kind: domain.KindBookPassenger, Passenger: name, Origin: "CHI", Destination: "DFW"})
			require.NoError(t, err)
			out = append(out, o.SeatNumber)
		}
		return out
	}

	assert.Equal(t, seats(), seats())
}

func TestReplayFile_Testdata(t *testing.T) {
	cfg := config.LedgerConfig{CatalogPath: testutil.TestDataPath(t, "catalog.txt")}
	engine, err := NewEngine(cfg, testOptions())
	require.NoError(t, err)

	stats, err := ReplayFile(context.Background(), engine, testutil.TestDataPath(t, "transactions.txt"))
	require.NoError(t, err)
	assert.Equal(t, 9, stats.Processed)
	assert.Equal(t, 6, stats.Applied)
	assert.Equal(t, 3, stats.Dropped)
}

func TestNewLogger(t *testing.T) {
	cfg := &config.Config{
		Logging: config.LoggingConfig{Level: "warn", Format: "json"},
		App:     config.AppConfig{Env: "production"},
	}

	log := NewLogger(cfg, "seat-ledger")
	require.NotNil(t, log)
	assert.Equal(t, "warn", log.GetLevel().String())
}

func TestSetupGlobalLogger(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetupGlobalLogger(&config.Config{Logging: config.LoggingConfig{Level: "warn", Format: "json"}}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
