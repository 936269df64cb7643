// Package catalog reads the flight catalog file.
//
// Each non-blank line holds one flight:
//
//	<number>,<seats>,<price>,<origin>,<destination>
//
// All whitespace is ignored, so "K792, 26, 130, CHI, DFW" is accepted.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// Column positions of a catalog record.
const (
	colNumber = iota
	colSeats
	colPrice
	colOrigin
	colDestination
	fieldCount
)

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]domain.FlightRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses every record from r. The first malformed line aborts the load.
// Airport codes are not validated here; the engine rejects them when it
// builds the flights.
func Load(r io.Reader) ([]domain.FlightRecord, error) {
	var records []domain.FlightRecord

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		fields, ok := SplitFields(scanner.Text())
		if !ok {
			continue
		}

		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		rec.Line = line
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return records, nil
}

func parseRecord(fields []string) (domain.FlightRecord, error) {
	if len(fields) != fieldCount {
		return domain.FlightRecord{}, fmt.Errorf("%w: expected %d fields, got %d", domain.ErrMalformedRecord, fieldCount, len(fields))
	}

	seats, err := strconv.Atoi(fields[colSeats])
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("%w: seats %q is not an integer", domain.ErrMalformedRecord, fields[colSeats])
	}
	price, err := strconv.Atoi(fields[colPrice])
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("%w: price %q is not an integer", domain.ErrMalformedRecord, fields[colPrice])
	}

	return domain.FlightRecord{
		Number:      fields[colNumber],
		Seats:       seats,
		Price:       price,
		Origin:      fields[colOrigin],
		Destination: fields[colDestination],
	}, nil
}

// SplitFields removes all whitespace from line and splits it on commas.
// It returns false for a line that is empty once whitespace is removed.
func SplitFields(line string) ([]string, bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)

	if compact == "" {
		return nil, false
	}
	return strings.Split(compact, ","), true
}
