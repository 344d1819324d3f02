// Package export writes receipts in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/billpay/app"
)

// Header is the first CSV row written by WriteCSV.
var Header = []string{"id", "category", "paid", "amount_available", "amount_owed", "time"}

// WriteJSON writes receipts to w as a JSON array.
func WriteJSON(w io.Writer, receipts []app.Receipt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(receipts)
}

// WriteCSV writes receipts to w in CSV format with a header row.
func WriteCSV(w io.Writer, receipts []app.Receipt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range receipts {
		rec := []string{
			r.ID,
			r.Category,
			strconv.FormatBool(r.Paid),
			strconv.Itoa(r.Record.AmountAvailable),
			strconv.Itoa(r.Record.AmountOwed),
			r.Time.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
