// Package report renders a settlement report for humans or machines.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
)

// Format selects how a report is rendered.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (expected text or json)", s)
	}
}

// rowFormat lays out one passenger row: name, seat and price columns.
const rowFormat = "%-50s %-10s %-10s"

// Write renders r to w in the given format.
func Write(w io.Writer, r domain.SettlementReport, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile renders r to path, creating parent directories as needed.
// An existing file is truncated.
func WriteFile(path string, r domain.SettlementReport, format Format) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	return Write(f, r, format)
}

// WriteText renders the plain-text settlement layout: one block per flight
// followed by the system summary. The output carries no trailing newline.
func WriteText(w io.Writer, r domain.SettlementReport) error {
	bw := bufio.NewWriter(w)

	for _, f := range r.Flights {
		writeFlight(bw, f)
		bw.WriteString("\n")
	}

	fmt.Fprintf(bw, "\nSystem's summary\nTotal seats sold: %d\nTotal revenue: $%d", r.TotalSeatsSold, r.TotalRevenue)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeFlight(w *bufio.Writer, f domain.FlightSummary) {
	fmt.Fprintf(w, "Flight# %s Number of seats available: %d\n", f.FlightNumber, f.AvailableSeats)
	fmt.Fprintf(w, "Total seats sold: %d\n", f.SoldSeats)
	fmt.Fprintf(w, "Total revenue on this flight: $%d\n\n", f.Revenue)

	fmt.Fprintf(w, rowFormat+"\n", "Passenger Name", "Seat#", "Price")
	for _, res := range f.Reservations {
		fmt.Fprintf(w, rowFormat+"\n", res.Passenger.Name, strconv.Itoa(res.SeatNumber), "$"+strconv.Itoa(res.Price))
	}
}

// WriteJSON renders r as an indented JSON document.
func WriteJSON(w io.Writer, r domain.SettlementReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
